package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/entitlement"
	"github.com/nhle/check-me-out/internal/locale"
	"github.com/nhle/check-me-out/internal/logging"
	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/notify"
	"github.com/nhle/check-me-out/internal/permission"
	"github.com/nhle/check-me-out/internal/state"
	"github.com/nhle/check-me-out/internal/store"
	"github.com/nhle/check-me-out/internal/theme"
)

// closeTimeout bounds the final flush of pending writes.
const closeTimeout = 10 * time.Second

// session is one opened and initialized application state.
type session struct {
	cfg         *Config
	app         *model.AppConfig
	log         *zap.Logger
	kv          *store.SQLiteStore
	writer      *store.Writer
	store       *state.Store
	entitlement entitlement.Provider
	scheduler   *notify.DailyScheduler

	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
	styles theme.Styles
}

type sessionOption func(*sessionOptions)

type sessionOptions struct {
	daily bool
}

// withDailyScheduler arms a real reminder scheduler instead of a no-op.
func withDailyScheduler() sessionOption {
	return func(o *sessionOptions) { o.daily = true }
}

func openSession(ctx context.Context, cfg *Config, stdout, stderr io.Writer, opts ...sessionOption) (*session, error) {
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}

	app, err := model.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.DBPath != "" {
		app.Data.Path = cfg.DBPath
	}
	if cfg.Verbose {
		app.Logger.Level = "debug"
	}

	log, err := logging.New(app.Logger)
	if err != nil {
		return nil, err
	}

	kv, err := store.NewSQLiteStore(app.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	writer := store.NewWriter(kv, log)

	s := &session{
		cfg:    cfg,
		app:    app,
		log:    log,
		kv:     kv,
		writer: writer,
		ctx:    ctx,
		stdout: stdout,
		stderr: stderr,
	}

	var now func() time.Time
	if cfg.Clock != nil {
		now = cfg.Clock.Now
	}
	var scheduler notify.Scheduler = notify.Nop{}
	if o.daily {
		s.scheduler = notify.NewDailyScheduler(8, now, log)
		s.scheduler.Start()
		scheduler = s.scheduler
	}

	s.entitlement = s.openEntitlement()
	s.store = state.New(kv, state.Options{
		Writer:    writer,
		Scheduler: scheduler,
		Clock:     cfg.Clock,
		Limits:    permission.LimitsFromConfig(app.Limits),
		Bundle:    locale.NewBundle(s.initialLanguage()),
		Logger:    log,
	})

	if err := s.store.Initialize(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	s.syncEntitlement()
	s.styles = theme.New(stdout, s.store.Settings().Theme)
	return s, nil
}

// initialLanguage is used until a stored language is applied.
func (s *session) initialLanguage() locale.Language {
	if s.app.Locale.Default != "" {
		return locale.Match(s.app.Locale.Default)
	}
	env := s.cfg.Env
	if env == nil {
		env = os.Environ()
	}
	return locale.Detect(env)
}

func (s *session) openEntitlement() entitlement.Provider {
	if !s.app.Features.EnableIAP {
		return entitlement.Disabled{}
	}
	ring := s.cfg.Keyring
	if ring == nil {
		var err error
		ring, err = entitlement.OpenKeyring(filepath.Dir(s.app.Data.Path))
		if err != nil {
			s.log.Warn("keyring unavailable, purchases disabled", zap.Error(err))
			return entitlement.Disabled{}
		}
	}
	return entitlement.New(true, ring, s.log)
}

// syncEntitlement promotes the stored tier when a purchase is on record.
func (s *session) syncEntitlement() {
	tier, err := s.entitlement.Tier(s.ctx)
	if err != nil {
		s.log.Warn("reading entitlement", zap.Error(err))
		return
	}
	if permission.IsPremium(tier) && !permission.IsPremium(s.store.Settings().UserPermission) {
		if err := s.store.UpdateUserPermission(tier); err != nil {
			s.log.Warn("applying entitlement", zap.Error(err))
		}
	}
}

// Close flushes pending writes and releases resources.
func (s *session) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	var errs []error
	if err := s.writer.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flushing writes: %w", err))
	}
	if n := s.writer.Failures(); n > 0 {
		errs = append(errs, fmt.Errorf("%d background writes failed", n))
	}
	if err := s.kv.Close(); err != nil {
		errs = append(errs, err)
	}
	_ = s.log.Sync()
	return errors.Join(errs...)
}

// explain prints an upgrade hint for limit and premium errors.
func (s *session) explain(err error) {
	if errors.Is(err, permission.ErrLimitReached) || errors.Is(err, permission.ErrPremiumRequired) {
		_, _ = fmt.Fprintln(s.stderr, s.styles.Warning.Render(s.store.Bundle().UpgradeHint()))
	}
}

// withSession opens a session for a command, runs fn and closes it.
func withSession(cmd *cobra.Command, cfg *Config, stdout, stderr io.Writer, fn func(s *session) error) error {
	s, err := openSession(cmd.Context(), cfg, stdout, stderr)
	if err != nil {
		return err
	}
	runErr := fn(s)
	if runErr != nil {
		s.explain(runErr)
	}
	closeErr := s.Close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}
