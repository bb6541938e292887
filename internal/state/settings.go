package state

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/locale"
	"github.com/nhle/check-me-out/internal/model"
)

// UpdateNotificationSettings toggles the reminder and, when clock is not
// empty, moves it to clock ("HH:mm"). The scheduler is re-armed; a
// scheduling failure is logged and does not undo the change.
func (s *Store) UpdateNotificationSettings(ctx context.Context, enabled bool, clock string) error {
	if clock != "" {
		if _, _, err := model.ParseClock(clock); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.state.Settings.Notification.Enabled = enabled
	if clock != "" {
		s.state.Settings.Notification.Time = clock
	}
	notification := s.state.Settings.Notification
	s.persistLocked(sliceSettings)
	s.mu.Unlock()

	if err := s.scheduler.Schedule(ctx, notification); err != nil {
		s.log.Error("scheduling reminder", zap.Error(err))
	}
	return nil
}

// UpdateUserPermission sets the entitlement tier.
func (s *Store) UpdateUserPermission(p model.Permission) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidPermission, p)
	}
	return s.updateSettings(func(st *model.AppSettings) {
		st.UserPermission = p
	})
}

// UpdateLanguage switches the active locale and stores the choice.
func (s *Store) UpdateLanguage(lang locale.Language) error {
	if err := s.bundle.Use(lang); err != nil {
		return err
	}
	return s.updateSettings(func(st *model.AppSettings) {
		st.Language = string(lang)
	})
}

// UpdateClockFormat sets the time display format.
func (s *Store) UpdateClockFormat(f model.ClockFormat) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidClockFormat, f)
	}
	return s.updateSettings(func(st *model.AppSettings) {
		st.ClockFormat = f
	})
}

// UpdateTheme sets the color theme.
func (s *Store) UpdateTheme(t model.Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidTheme, t)
	}
	return s.updateSettings(func(st *model.AppSettings) {
		st.Theme = t
	})
}

// UpdateResetTime sets the daily reset time, or turns it off with nil.
func (s *Store) UpdateResetTime(resetTime *string) error {
	var rt *string
	if resetTime != nil {
		if _, _, err := model.ParseClock(*resetTime); err != nil {
			return err
		}
		rt = model.StringPtr(*resetTime)
	}
	return s.updateSettings(func(st *model.AppSettings) {
		st.ResetTime = rt
	})
}

func (s *Store) updateSettings(fn func(st *model.AppSettings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state.Settings)
	s.persistLocked(sliceSettings)
	return nil
}
