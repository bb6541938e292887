package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/reset"
)

func newRunCmd(stdout, stderr io.Writer, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Stay in the foreground, resetting checklists and firing reminders",
		Long: "run keeps the daily reset and the reminder schedule active until interrupted.\n" +
			"Reminders are printed as they fire. SIGHUP re-checks the daily reset immediately.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			testNotification, _ := cmd.Flags().GetBool("test-notification")

			s, err := openSession(cmd.Context(), cfg, stdout, stderr, withDailyScheduler())
			if err != nil {
				return err
			}
			defer func() {
				if err := s.Close(); err != nil {
					_, _ = fmt.Fprintln(stderr, "Error:", err)
				}
			}()
			return s.run(testNotification)
		},
	}
	cmd.Flags().Bool("test-notification", false, "Send a test reminder on start")
	return cmd
}

func (s *session) run(testNotification bool) error {
	interval := time.Duration(s.app.Reset.PollIntervalSec) * time.Second
	ticker := reset.NewTicker(s.store.Checker(), interval, s.log)
	ticker.Start(s.ctx)
	defer ticker.Stop()
	ticker.Trigger()

	wake, stopWake := s.foregroundEvents()
	defer stopWake()

	if next, ok := s.scheduler.Next(); ok {
		format := s.store.Settings().ClockFormat
		_, _ = fmt.Fprintf(s.stdout, "Next reminder %s %s\n",
			model.DateString(next),
			model.FormatClockForDisplay(model.FormatClock(next.Hour(), next.Minute()), format))
	} else {
		_, _ = fmt.Fprintln(s.stdout, "Reminder is off")
	}
	if rt := s.store.ResetTime(); rt != nil {
		_, _ = fmt.Fprintf(s.stdout, "Daily reset at %s\n", *rt)
	}

	if testNotification {
		title, body := s.store.Bundle().NotificationDefaults()
		if err := s.scheduler.SendTest(title, body); err != nil {
			return err
		}
	}

	for {
		select {
		case <-s.ctx.Done():
			s.log.Debug("run stopped")
			return nil
		case <-wake:
			s.log.Debug("foreground event, re-checking daily reset")
			ticker.Trigger()
		case n, ok := <-s.scheduler.C():
			if !ok {
				return nil
			}
			s.log.Info("reminder fired", zap.String("id", n.ID), zap.Bool("test", n.Test))
			_, _ = fmt.Fprintf(s.stdout, "%s %s\n", s.styles.Header.Render(n.Title), n.Body)
		}
	}
}

// foregroundEvents delivers one value per SIGHUP, or per Config.Foreground
// value when set.
func (s *session) foregroundEvents() (<-chan struct{}, func()) {
	if s.cfg.Foreground != nil {
		return s.cfg.Foreground, func() {}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP)
	wake := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-sig:
				select {
				case wake <- struct{}{}:
				default:
				}
			}
		}
	}()
	return wake, func() {
		signal.Stop(sig)
		close(done)
	}
}
