package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/check-me-out/internal/model"
)

func newConfigCmd(stdout io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(cfg.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.ConfigPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			app := model.DefaultAppConfig()
			if cfg.DBPath != "" {
				app.Data.Path = cfg.DBPath
			}
			if err := model.SaveConfig(cfg.ConfigPath, app); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(stdout, "Wrote %s\n", cfg.ConfigPath)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(stdout, cfg.ConfigPath)
			return nil
		},
	})

	return cmd
}

func newClearCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return errors.New("refusing to clear data without --yes")
			}
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.ResetStorage(s.ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(s.stdout, "All data cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Confirm deleting everything")
	return cmd
}
