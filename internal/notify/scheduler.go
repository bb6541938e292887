// Package notify arranges the recurring daily reminder.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
)

var ErrStopped = errors.New("notify: scheduler stopped")

// Scheduler arranges one recurring daily trigger from the notification
// settings. Each call replaces the previous schedule; a disabled setting
// cancels it.
type Scheduler interface {
	Schedule(ctx context.Context, settings model.NotificationSettings) error
}

// Nop discards schedules.
type Nop struct{}

func (Nop) Schedule(context.Context, model.NotificationSettings) error { return nil }

// NextTrigger returns the first instant strictly after now at the configured
// HH:mm. ok is false when the reminder is disabled or its time is invalid.
func NextTrigger(now time.Time, settings model.NotificationSettings) (next time.Time, ok bool) {
	if !settings.Enabled {
		return time.Time{}, false
	}
	hour, minute, err := model.ParseClock(settings.Time)
	if err != nil {
		return time.Time{}, false
	}
	next = model.At(now, hour, minute)
	if !next.After(now) {
		next = model.At(now.AddDate(0, 0, 1), hour, minute)
	}
	return next, true
}

// DailyScheduler fires the reminder once per day and delivers it on C.
type DailyScheduler struct {
	now func() time.Time
	log *zap.Logger

	mu        sync.Mutex
	settings  model.NotificationSettings
	armed     bool
	lastFired time.Time
	started   bool
	stopped   bool

	out     chan model.Notification
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	dropped uint64
}

// NewDailyScheduler returns a scheduler whose output channel holds up to
// bufferSize undelivered notifications. now defaults to time.Now.
func NewDailyScheduler(bufferSize int, now func() time.Time, log *zap.Logger) *DailyScheduler {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DailyScheduler{
		now:    now,
		log:    log.Named("notify"),
		out:    make(chan model.Notification, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// C delivers fired notifications. It is closed by Stop.
func (s *DailyScheduler) C() <-chan model.Notification {
	return s.out
}

// Dropped returns how many notifications were discarded because C was full.
func (s *DailyScheduler) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

func (s *DailyScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	go s.loop()
}

// Stop cancels the schedule and closes C. It is safe to call more than once.
func (s *DailyScheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if !s.started {
		s.stopped = true
		close(s.out)
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()
	<-s.doneCh
}

// Schedule replaces the current schedule with settings.
func (s *DailyScheduler) Schedule(_ context.Context, settings model.NotificationSettings) error {
	if settings.Enabled {
		if _, _, err := model.ParseClock(settings.Time); err != nil {
			return fmt.Errorf("scheduling reminder: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	s.settings = settings
	s.armed = settings.Enabled
	s.signalWakeup()

	if settings.Enabled {
		s.log.Debug("reminder scheduled", zap.String("time", settings.Time))
	} else {
		s.log.Debug("reminder cancelled")
	}
	return nil
}

// Next returns the pending trigger time, if any.
func (s *DailyScheduler) Next() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked()
}

// SendTest delivers a notification immediately, outside the schedule.
func (s *DailyScheduler) SendTest(title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	s.deliver(model.Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Body:    body,
		FiredAt: model.Millis(s.now()),
		Test:    true,
	})
	return nil
}

func (s *DailyScheduler) nextLocked() (time.Time, bool) {
	if !s.armed {
		return time.Time{}, false
	}
	from := s.now()
	if s.lastFired.After(from) || s.lastFired.Equal(from) {
		from = s.lastFired
	}
	return NextTrigger(from, s.settings)
}

func (s *DailyScheduler) loop() {
	defer close(s.doneCh)
	defer close(s.out)

	var timer *time.Timer
	for {
		s.mu.Lock()
		next, ok := s.nextLocked()
		s.mu.Unlock()

		if !ok {
			select {
			case <-s.wakeup:
				continue
			case <-s.stopCh:
				return
			}
		}

		wait := next.Sub(s.now())
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			s.fire(next)
		case <-s.wakeup:
			continue
		case <-s.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (s *DailyScheduler) fire(at time.Time) {
	s.mu.Lock()
	if !s.armed {
		s.mu.Unlock()
		return
	}
	s.lastFired = at
	settings := s.settings
	s.mu.Unlock()

	s.deliver(model.Notification{
		ID:      uuid.NewString(),
		Title:   settings.Title,
		Body:    settings.Body,
		FiredAt: model.Millis(at),
	})
}

func (s *DailyScheduler) deliver(n model.Notification) {
	select {
	case s.out <- n:
	default:
		atomic.AddUint64(&s.dropped, 1)
		s.log.Warn("notification dropped", zap.String("id", n.ID))
	}
}

func (s *DailyScheduler) signalWakeup() {
	select {
	case s.wakeup <- struct{}{}:
	default:
	}
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
