package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nhle/check-me-out/internal/model"
)

func newShowCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if all {
					return s.showAll()
				}
				return s.showActive()
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Show every checklist")
	return cmd
}

func newAddCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an item to a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon, _ := cmd.Flags().GetString("icon")
			ref, _ := cmd.Flags().GetString("checklist")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(ref)
				if err != nil {
					return err
				}
				item, err := s.store.AddItem(c.ID, args[0], icon)
				if err != nil {
					return err
				}
				if s.cfg.JSON {
					return printJSON(s.stdout, item)
				}
				_, _ = fmt.Fprintf(s.stdout, "Added %q to %s as #%d\n", item.Title, c.Name, item.Order+1)
				return nil
			})
		},
	}
	cmd.Flags().String("icon", "", "Item icon name")
	cmd.Flags().StringP("checklist", "c", "", "Checklist name or id (default: active)")
	return cmd
}

func newToggleCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle [item]",
		Short: "Check or uncheck an item by number, id or title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, _ := cmd.Flags().GetString("checklist")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(ref)
				if err != nil {
					return err
				}
				item, err := resolveItem(c, args[0])
				if err != nil {
					return err
				}
				if _, err := s.store.ToggleItemCheck(c.ID, item.ID); err != nil {
					return err
				}
				c, err = s.store.Checklist(c.ID)
				if err != nil {
					return err
				}
				if s.cfg.JSON {
					return printJSON(s.stdout, c)
				}
				s.renderChecklist(c)
				return nil
			})
		},
	}
	cmd.Flags().StringP("checklist", "c", "", "Checklist name or id (default: active)")
	return cmd
}

func newRemoveCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm [item]",
		Aliases: []string{"remove"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, _ := cmd.Flags().GetString("checklist")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(ref)
				if err != nil {
					return err
				}
				item, err := resolveItem(c, args[0])
				if err != nil {
					return err
				}
				if err := s.store.DeleteItem(c.ID, item.ID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Removed %q\n", item.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringP("checklist", "c", "", "Checklist name or id (default: active)")
	return cmd
}

func newRenameCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [item] [title]",
		Short: "Rename an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, _ := cmd.Flags().GetString("checklist")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(ref)
				if err != nil {
					return err
				}
				item, err := resolveItem(c, args[0])
				if err != nil {
					return err
				}
				if err := s.store.UpdateItem(c.ID, item.ID, args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Renamed %q to %q\n", item.Title, args[1])
				return nil
			})
		},
	}
	cmd.Flags().StringP("checklist", "c", "", "Checklist name or id (default: active)")
	return cmd
}

func newResetCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Uncheck items",
		Long: "Uncheck every item of the active checklist, or of every checklist with --all.\n" +
			"With --group, every item of every checklist in the group is deleted instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			groupRef, _ := cmd.Flags().GetString("group")
			ref, _ := cmd.Flags().GetString("checklist")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				switch {
				case groupRef != "":
					g, err := s.resolveGroup(groupRef)
					if err != nil {
						return err
					}
					if err := s.store.ResetAllItemsInGroup(g.ID); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(s.stdout, "Cleared all items in %s\n", s.store.GroupLabel(g))
					if g.Name == model.DefaultGroupName {
						_, _ = fmt.Fprintln(s.stdout, s.styles.Help.Render("  empty checklists in this group get the default items again on next start"))
					}
				case all:
					s.store.ResetAllChecklists()
					_, _ = fmt.Fprintln(s.stdout, "Unchecked every checklist")
				default:
					c, err := s.resolveChecklist(ref)
					if err != nil {
						return err
					}
					if err := s.store.ResetAllItems(c.ID); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(s.stdout, "Unchecked %s\n", c.Name)
				}
				return nil
			})
		},
	}
	cmd.Flags().Bool("all", false, "Uncheck every checklist")
	cmd.Flags().String("group", "", "Delete every item of every checklist in this group")
	cmd.Flags().StringP("checklist", "c", "", "Checklist name or id (default: active)")
	cmd.MarkFlagsMutuallyExclusive("all", "group")
	return cmd
}

func newReorderCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder [item...]",
		Short: "Reorder items; list every item in its new position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, _ := cmd.Flags().GetString("checklist")
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				c, err := s.resolveChecklist(ref)
				if err != nil {
					return err
				}
				ids := make([]string, len(args))
				for i, a := range args {
					item, err := resolveItem(c, a)
					if err != nil {
						return err
					}
					ids[i] = item.ID
				}
				if err := s.store.ReorderItems(c.ID, ids); err != nil {
					return err
				}
				c, err = s.store.Checklist(c.ID)
				if err != nil {
					return err
				}
				s.renderChecklist(c)
				return nil
			})
		},
	}
	cmd.Flags().StringP("checklist", "c", "", "Checklist name or id (default: active)")
	return cmd
}
