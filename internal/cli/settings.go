package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/check-me-out/internal/entitlement"
	"github.com/nhle/check-me-out/internal/locale"
	"github.com/nhle/check-me-out/internal/model"
)

func newSettingsCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, showSettings)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, showSettings)
		},
	})

	notifyCmd := &cobra.Command{
		Use:       "notify [on|off]",
		Short:     "Turn the daily reminder on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("time")
			enabled, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.UpdateNotificationSettings(s.ctx, enabled, at); err != nil {
					return err
				}
				return showSettings(s)
			})
		},
	}
	notifyCmd.Flags().String("time", "", "Reminder time as HH:mm")
	cmd.AddCommand(notifyCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset-time [HH:mm|off]",
		Short: "Set the time of day all checklists are unchecked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rt *string
			if !strings.EqualFold(args[0], "off") {
				rt = model.StringPtr(args[0])
			}
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.UpdateResetTime(rt); err != nil {
					return err
				}
				return showSettings(s)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "language [code]",
		Short: "Set the language (zh-TW, zh-CN, en)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.UpdateLanguage(locale.Language(args[0])); err != nil {
					return err
				}
				return showSettings(s)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "clock [12h|24h]",
		Short:     "Set the clock display format",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"12h", "24h"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.UpdateClockFormat(model.ClockFormat(args[0])); err != nil {
					return err
				}
				return showSettings(s)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Set the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.UpdateTheme(model.Theme(args[0])); err != nil {
					return err
				}
				return showSettings(s)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "tier [free|premium]",
		Short:     "Set the user tier directly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"free", "premium"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				if err := s.store.UpdateUserPermission(model.Permission(strings.ToLower(args[0]))); err != nil {
					return err
				}
				return showSettings(s)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "upgrade",
		Short: "Purchase the premium unlock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				tier, err := s.entitlement.Upgrade(s.ctx, entitlement.ProductPremium)
				if err != nil {
					return err
				}
				if err := s.store.UpdateUserPermission(tier); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Tier is now %s\n", tier)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore",
		Short: "Restore previous purchases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, cfg, stdout, stderr, func(s *session) error {
				tier, err := s.entitlement.Restore(s.ctx)
				if err != nil {
					return err
				}
				if err := s.store.UpdateUserPermission(tier); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(s.stdout, "Tier is now %s\n", tier)
				return nil
			})
		},
	})

	return cmd
}

func showSettings(s *session) error {
	settings := s.store.Settings()
	if s.cfg.JSON {
		return printJSON(s.stdout, settings)
	}
	last, err := s.store.Checker().LastResetDate(s.ctx)
	if err != nil {
		return err
	}
	s.renderSettings(settings, last)
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", v)
	}
}
