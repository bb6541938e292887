package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New("model: invalid HH:mm time")

// DateLayout is the layout of persisted calendar dates.
const DateLayout = "2006-01-02"

// ParseClock parses "HH:mm" in 24h form.
func ParseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hour, minute, nil
}

// FormatClock renders hour and minute as "HH:mm".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatClockForDisplay renders a stored "HH:mm" value in the given clock
// format. Values that do not parse are returned unchanged; an empty value
// renders as "00:00".
func FormatClockForDisplay(s string, format ClockFormat) string {
	if s == "" {
		return "00:00"
	}
	hour, minute, err := ParseClock(s)
	if err != nil {
		return s
	}
	if format == Clock12h {
		period := "AM"
		if hour >= 12 {
			period = "PM"
		}
		h := hour % 12
		if h == 0 {
			h = 12
		}
		return fmt.Sprintf("%02d:%02d %s", h, minute, period)
	}
	return FormatClock(hour, minute)
}

// DateString returns the local calendar date of t as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// At returns the instant on t's calendar day at hour:minute in t's location.
func At(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, t.Location())
}

// Millis converts t to epoch milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
