// Package reset implements the scheduled daily check-state reset.
//
// The reset is a catch-up rule rather than a precise timer: on any check,
// if a reset time is configured, today has not been reset yet and the reset
// time has already passed today, every checklist is unchecked and today's
// date is recorded. Checks are driven by polling (Ticker), by explicit
// triggers when the app comes to the foreground, and once at startup.
package reset

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/store"
)

// ShouldReset reports whether a reset is due at now. resetTime is "HH:mm" or
// nil when the feature is off; lastResetDate is the recorded YYYY-MM-DD of
// the previous reset, empty if none.
func ShouldReset(now time.Time, resetTime *string, lastResetDate string) bool {
	if resetTime == nil {
		return false
	}
	hour, minute, err := model.ParseClock(*resetTime)
	if err != nil {
		return false
	}
	if model.DateString(now) == lastResetDate {
		return false
	}
	return !now.Before(model.At(now, hour, minute))
}

// Target is the state the checker reads its schedule from and resets.
type Target interface {
	ResetTime() *string
	ResetAllChecklists()
}

// Checker evaluates ShouldReset against the persisted last-reset date.
type Checker struct {
	kv     store.KV
	target Target
	now    func() time.Time
	log    *zap.Logger
}

// NewChecker returns a checker. now defaults to time.Now.
func NewChecker(kv store.KV, target Target, now func() time.Time, log *zap.Logger) *Checker {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{kv: kv, target: target, now: now, log: log.Named("reset")}
}

// LastResetDate returns the recorded date of the previous reset, or "".
func (c *Checker) LastResetDate(ctx context.Context) (string, error) {
	var date string
	if _, err := store.GetJSON(ctx, c.kv, store.KeyLastResetDate, &date); err != nil {
		return "", fmt.Errorf("reading last reset date: %w", err)
	}
	return date, nil
}

// Check performs the reset when due and reports whether it did. A failed
// read of the last-reset date is treated as "never reset".
func (c *Checker) Check(ctx context.Context) (bool, error) {
	resetTime := c.target.ResetTime()
	if resetTime == nil {
		return false, nil
	}

	last, err := c.LastResetDate(ctx)
	if err != nil {
		c.log.Warn("last reset date unreadable", zap.Error(err))
		last = ""
	}

	now := c.now()
	if !ShouldReset(now, resetTime, last) {
		return false, nil
	}

	c.target.ResetAllChecklists()

	today := model.DateString(now)
	if err := store.SetJSON(ctx, c.kv, store.KeyLastResetDate, today); err != nil {
		return true, fmt.Errorf("recording reset date: %w", err)
	}
	c.log.Info("checklists reset", zap.String("date", today), zap.String("reset_time", *resetTime))
	return true, nil
}
