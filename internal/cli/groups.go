package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/permission"
	"github.com/nhle/check-me-out/internal/templates"
)

func newGroupCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups",
	}
	cmd.AddCommand(newGroupListCmd(stdout, stderr, cfg))
	cmd.AddCommand(newGroupCreateCmd(stdout, stderr, cfg))
	cmd.AddCommand(newGroupDeleteCmd(stdout, stderr, cfg))
	cmd.AddCommand(newGroupUseCmd(stdout, stderr, cfg))
	cmd.AddCommand(newGroupRenameCmd(stdout, stderr, cfg))
	return cmd
}

func newGroupListCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				st := s.store.Snapshot()
				if s.cfg.JSON {
					return printJSON(s.stdout, st.Groups)
				}
				for _, g := range st.Groups {
					marker := " "
					if st.ActiveGroupID != nil && *st.ActiveGroupID == g.ID {
						marker = "*"
					}
					_, _ = fmt.Fprintf(s.stdout, "%s %-20s %d checklists\n", marker, s.store.GroupLabel(g), len(st.ChecklistsInGroup(g.ID)))
				}
				limit := s.store.Limits().GroupLimit(st.Settings.UserPermission)
				if limit != permission.Unlimited {
					_, _ = fmt.Fprintln(s.stdout, s.styles.Help.Render(fmt.Sprintf("%d of %d groups used", len(st.Groups), limit)))
				}
				return nil
			})
		},
	}
}

func newGroupCreateCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon, _ := cmd.Flags().GetString("icon")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				g, err := s.store.CreateGroup(args[0], icon)
				if err != nil {
					return err
				}
				if s.cfg.JSON {
					return printJSON(s.stdout, g)
				}
				_, _ = fmt.Fprintf(s.stdout, "Created group %q\n", g.Name)
				return nil
			})
		},
	}
	cmd.Flags().String("icon", "", "Group icon name")
	return cmd
}

func newGroupDeleteCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a group; its checklists become ungrouped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				g, err := s.resolveGroup(args[0])
				if err != nil {
					return err
				}
				if err := s.store.DeleteGroup(g.ID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Deleted group %q\n", s.store.GroupLabel(g))
				return nil
			})
		},
	}
}

func newGroupUseCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "use [name]",
		Short: "Make a group active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				g, err := s.resolveGroup(args[0])
				if err != nil {
					return err
				}
				if err := s.store.SetActiveGroup(model.StringPtr(g.ID)); err != nil {
					return err
				}
				return s.showActive()
			})
		},
	}
}

func newGroupRenameCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [name] [new-name]",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				g, err := s.resolveGroup(args[0])
				if err != nil {
					return err
				}
				if err := s.store.UpdateGroupName(g.ID, args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Renamed group %q to %q\n", s.store.GroupLabel(g), args[1])
				return nil
			})
		},
	}
}

func newTemplateCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse and import group templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := templates.All()
			if cfg.JSON {
				return printJSON(stdout, all)
			}
			for _, t := range all {
				_, _ = fmt.Fprintf(stdout, "%-12s %-16s %2d items  %s\n", t.ID, t.Name, len(t.Items), t.Description)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import [id]",
		Short: "Create a group and checklist from a template (premium)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				g, c, err := s.store.ImportGroupTemplate(args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Imported %q with %d items\n", g.Name, len(c.Items))
				return nil
			})
		},
	})

	return cmd
}
