package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPermission  = errors.New("model: invalid user permission")
	ErrInvalidClockFormat = errors.New("model: invalid clock format")
	ErrInvalidTheme       = errors.New("model: invalid theme")
)

// Permission is the user's entitlement tier.
type Permission string

const (
	PermissionFree    Permission = "free"
	PermissionPremium Permission = "premium"
)

func (p Permission) IsValid() bool {
	switch p {
	case PermissionFree, PermissionPremium:
		return true
	default:
		return false
	}
}

// ClockFormat controls how times are displayed.
type ClockFormat string

const (
	Clock12h ClockFormat = "12h"
	Clock24h ClockFormat = "24h"
)

func (f ClockFormat) IsValid() bool {
	return f == Clock12h || f == Clock24h
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// AppSettings is the per-installation settings singleton.
type AppSettings struct {
	Notification   NotificationSettings `json:"notification"`
	UserPermission Permission           `json:"userPermission"`
	Theme          Theme                `json:"theme"`
	Language       string               `json:"language"`
	ClockFormat    ClockFormat          `json:"clockFormat"`
	// ResetTime is "HH:mm" or nil when the daily reset is off.
	ResetTime *string `json:"resetTime"`
}

// Validate performs the basic type and range checks applied to settings.
func (s AppSettings) Validate() error {
	if !s.UserPermission.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPermission, s.UserPermission)
	}
	if !s.ClockFormat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidClockFormat, s.ClockFormat)
	}
	if !s.Theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, s.Theme)
	}
	if _, _, err := ParseClock(s.Notification.Time); err != nil {
		return fmt.Errorf("notification time: %w", err)
	}
	if s.ResetTime != nil {
		if _, _, err := ParseClock(*s.ResetTime); err != nil {
			return fmt.Errorf("reset time: %w", err)
		}
	}
	return nil
}

// Clone returns a deep copy of the settings.
func (s AppSettings) Clone() AppSettings {
	out := s
	if s.ResetTime != nil {
		rt := *s.ResetTime
		out.ResetTime = &rt
	}
	return out
}
