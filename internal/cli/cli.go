// Package cli implements the checkmeout command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/99designs/keyring"
	"github.com/spf13/cobra"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/state"
)

// Version is set at build time.
var Version = "dev"

// Config carries process-level inputs. Zero values select defaults.
type Config struct {
	ConfigPath string // config file, defaults to model.DefaultConfigPath
	DBPath     string // overrides data.path from the config file
	Env        []string
	Verbose    bool
	JSON       bool

	// Clock and Keyring replace the system clock and OS keyring in tests.
	Clock   state.Clock
	Keyring keyring.Keyring

	// Foreground replaces SIGHUP as the signal that makes run re-check the
	// daily reset.
	Foreground <-chan struct{}
}

// Execute runs the CLI with the given arguments and IO writers and returns
// the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, cfg *Config) int {
	root := NewRootCmd(stdout, stderr, cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCmd creates the root command with injectable IO.
func NewRootCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	if cfg == nil {
		cfg = &Config{}
	}

	cmd := &cobra.Command{
		Use:     "checkmeout",
		Short:   "A daily checklist for the things you carry",
		Long:    "checkmeout keeps grouped checklists of the items to take before leaving, resets them daily and reminds you to check them.",
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ConfigPath == "" {
				cfg.ConfigPath = model.DefaultConfigPath()
			}
			if v, _ := cmd.Flags().GetString("config"); v != "" {
				cfg.ConfigPath = v
			}
			if v, _ := cmd.Flags().GetString("db"); v != "" {
				cfg.DBPath = v
			}
			if v, _ := cmd.Flags().GetBool("verbose"); v {
				cfg.Verbose = true
			}
			if v, _ := cmd.Flags().GetBool("json"); v {
				cfg.JSON = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				return s.showActive()
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file (default ~/.config/checkmeout/config.yaml)")
	cmd.PersistentFlags().String("db", "", "Database file, overrides data.path")
	cmd.PersistentFlags().BoolP("verbose", "V", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	cmd.AddCommand(newShowCmd(stdout, stderr, cfg))
	cmd.AddCommand(newAddCmd(stdout, stderr, cfg))
	cmd.AddCommand(newToggleCmd(stdout, stderr, cfg))
	cmd.AddCommand(newRemoveCmd(stdout, stderr, cfg))
	cmd.AddCommand(newRenameCmd(stdout, stderr, cfg))
	cmd.AddCommand(newResetCmd(stdout, stderr, cfg))
	cmd.AddCommand(newReorderCmd(stdout, stderr, cfg))
	cmd.AddCommand(newChecklistCmd(stdout, stderr, cfg))
	cmd.AddCommand(newGroupCmd(stdout, stderr, cfg))
	cmd.AddCommand(newTemplateCmd(stdout, stderr, cfg))
	cmd.AddCommand(newSettingsCmd(stdout, stderr, cfg))
	cmd.AddCommand(newRunCmd(stdout, stderr, cfg))
	cmd.AddCommand(newConfigCmd(stdout, cfg))
	cmd.AddCommand(newClearCmd(stdout, stderr, cfg))

	return cmd
}
