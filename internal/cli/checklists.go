package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nhle/check-me-out/internal/model"
)

func newChecklistCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Manage checklists",
	}
	cmd.AddCommand(newChecklistListCmd(stdout, stderr, cfg))
	cmd.AddCommand(newChecklistCreateCmd(stdout, stderr, cfg))
	cmd.AddCommand(newChecklistDeleteCmd(stdout, stderr, cfg))
	cmd.AddCommand(newChecklistUseCmd(stdout, stderr, cfg))
	cmd.AddCommand(newChecklistRenameCmd(stdout, stderr, cfg))
	return cmd
}

func newChecklistListCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List checklists with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				st := s.store.Snapshot()
				if s.cfg.JSON {
					return printJSON(s.stdout, st.Checklists)
				}
				for _, c := range st.Checklists {
					group := "-"
					if c.GroupID != nil {
						if i := st.FindGroup(*c.GroupID); i >= 0 {
							group = s.store.GroupLabel(st.Groups[i])
						}
					}
					marker := " "
					if st.ActiveChecklistID != nil && *st.ActiveChecklistID == c.ID {
						marker = "*"
					}
					stats := c.Stats()
					_, _ = fmt.Fprintf(s.stdout, "%s %-20s %-12s %d/%d\n", marker, c.Name, group, stats.Checked, stats.Total)
				}
				return nil
			})
		},
	}
}

func newChecklistCreateCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create an empty checklist and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupRef, _ := cmd.Flags().GetString("group")
			ungrouped, _ := cmd.Flags().GetBool("ungrouped")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				var groupID *string
				switch {
				case ungrouped:
				case groupRef != "":
					g, err := s.resolveGroup(groupRef)
					if err != nil {
						return err
					}
					groupID = model.StringPtr(g.ID)
				default:
					groupID = s.store.Snapshot().ActiveGroupID
				}

				c, err := s.store.CreateChecklist(args[0], groupID)
				if err != nil {
					return err
				}
				if s.cfg.JSON {
					return printJSON(s.stdout, c)
				}
				_, _ = fmt.Fprintf(s.stdout, "Created checklist %q\n", c.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringP("group", "g", "", "Group name or id (default: active group)")
	cmd.Flags().Bool("ungrouped", false, "Create the checklist outside any group")
	cmd.MarkFlagsMutuallyExclusive("group", "ungrouped")
	return cmd
}

func newChecklistDeleteCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a checklist and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(args[0])
				if err != nil {
					return err
				}
				if err := s.store.DeleteChecklist(c.ID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Deleted checklist %q\n", c.Name)
				return nil
			})
		},
	}
}

func newChecklistUseCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "use [name]",
		Short: "Make a checklist active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(args[0])
				if err != nil {
					return err
				}
				if err := s.store.SetActiveChecklist(c.ID); err != nil {
					return err
				}
				return s.showActive()
			})
		},
	}
}

func newChecklistRenameCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [name] [new-name]",
		Short: "Rename a checklist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(args[0])
				if err != nil {
					return err
				}
				if err := s.store.UpdateChecklistName(c.ID, args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Renamed checklist %q to %q\n", c.Name, args[1])
				return nil
			})
		},
	}
}
