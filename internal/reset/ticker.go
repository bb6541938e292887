package reset

import (
	"context"
	gosync "sync"
	"time"

	"go.uber.org/zap"
)

// checkTimeout bounds a single check.
const checkTimeout = 10 * time.Second

// Ticker runs a Checker at every interval boundary and on demand.
type Ticker struct {
	checker  *Checker
	interval time.Duration

	triggerCh chan struct{}
	stopCh    chan struct{}
	done      chan struct{}
	log       *zap.Logger

	mu      gosync.Mutex
	running bool
	stopped bool
}

// NewTicker returns a ticker polling every interval; a non-positive interval
// means one minute.
func NewTicker(checker *Checker, interval time.Duration, log *zap.Logger) *Ticker {
	if interval <= 0 {
		interval = time.Minute
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ticker{
		checker:   checker,
		interval:  interval,
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		log:       log.Named("reset-ticker"),
	}
}

// Start launches the polling goroutine. It stops when ctx is done or Stop is
// called. Calling Start twice, or after Stop, has no effect.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.running || t.stopped {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	go t.loop(ctx)
}

// Trigger requests an immediate check, e.g. when the app is foregrounded.
func (t *Ticker) Trigger() {
	select {
	case t.triggerCh <- struct{}{}:
	default:
		// a check is already pending
	}
}

// Stop halts the polling goroutine and waits for it to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	t.stopped = true
	close(t.stopCh)
	t.mu.Unlock()

	<-t.done
}

func (t *Ticker) loop(ctx context.Context) {
	defer close(t.done)

	timer := time.NewTimer(t.untilNextBoundary(time.Now()))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopCh:
			return
		case <-t.triggerCh:
			t.check(ctx)
		case now := <-timer.C:
			t.check(ctx)
			timer.Reset(t.untilNextBoundary(now))
		}
	}
}

// untilNextBoundary aligns ticks to wall-clock multiples of the interval so
// a one-minute interval fires at the top of each minute.
func (t *Ticker) untilNextBoundary(now time.Time) time.Duration {
	next := now.Truncate(t.interval).Add(t.interval)
	return next.Sub(now)
}

func (t *Ticker) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if _, err := t.checker.Check(ctx); err != nil {
		t.log.Error("reset check failed", zap.Error(err))
	}
}
