// Package state owns the in-memory application state tree and every
// operation that mutates it.
//
// Mutations are synchronous; each one enqueues the affected slices on a
// background store.Writer and never waits for the write. Persistence
// failures are logged by the writer and do not roll back the in-memory
// state, which stays authoritative for the session.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/locale"
	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/notify"
	"github.com/nhle/check-me-out/internal/permission"
	"github.com/nhle/check-me-out/internal/reset"
	"github.com/nhle/check-me-out/internal/store"
)

var (
	ErrChecklistNotFound = errors.New("state: checklist not found")
	ErrGroupNotFound     = errors.New("state: group not found")
	ErrItemNotFound      = errors.New("state: item not found")
	ErrEmptyName         = errors.New("state: name must not be empty")
	ErrInvalidOrder      = errors.New("state: reorder list does not match checklist items")
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a Store. Zero values select defaults.
type Options struct {
	// Writer persists slices in the background. When nil the Store starts
	// its own and closes it in Close.
	Writer *store.Writer

	Scheduler notify.Scheduler
	Clock     Clock

	// NewID generates entity ids. Defaults to uuid.NewString.
	NewID func() string

	Limits permission.Limits
	Bundle *locale.Bundle
	Logger *zap.Logger
}

// Store is the single owner of the application state.
type Store struct {
	kv        store.KV
	writer    *store.Writer
	ownWriter bool
	scheduler notify.Scheduler
	clock     Clock
	newID     func() string
	limits    permission.Limits
	bundle    *locale.Bundle
	log       *zap.Logger
	checker   *reset.Checker

	mu    sync.RWMutex
	state model.AppState
}

// New returns a Store over kv in the loading state. Call Initialize before
// use.
func New(kv store.KV, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Scheduler == nil {
		opts.Scheduler = notify.Nop{}
	}
	if opts.Limits == (permission.Limits{}) {
		opts.Limits = permission.DefaultLimits()
	}
	if opts.Bundle == nil {
		opts.Bundle = locale.NewBundle(locale.Fallback)
	}

	s := &Store{
		kv:        kv,
		writer:    opts.Writer,
		scheduler: opts.Scheduler,
		clock:     opts.Clock,
		newID:     opts.NewID,
		limits:    opts.Limits,
		bundle:    opts.Bundle,
		log:       opts.Logger.Named("state"),
	}
	if s.writer == nil {
		s.writer = store.NewWriter(kv, opts.Logger)
		s.ownWriter = true
	}
	s.checker = reset.NewChecker(kv, s, s.clock.Now, opts.Logger)
	s.state = model.AppState{IsLoading: true}
	return s
}

// Close flushes pending writes and stops the writer if the Store owns it.
func (s *Store) Close(ctx context.Context) error {
	if s.ownWriter {
		return s.writer.Close(ctx)
	}
	return s.writer.Flush(ctx)
}

// Checker returns the reset checker bound to this store.
func (s *Store) Checker() *reset.Checker {
	return s.checker
}

// Limits returns the quotas in force.
func (s *Store) Limits() permission.Limits {
	return s.limits
}

// Bundle returns the locale bundle the store applies settings to.
func (s *Store) Bundle() *locale.Bundle {
	return s.bundle
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// IsLoading reports whether Initialize has not completed yet.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

// Settings returns a copy of the settings.
func (s *Store) Settings() model.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings.Clone()
}

// ResetTime returns the configured daily reset time, or nil.
func (s *Store) ResetTime() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Settings.ResetTime == nil {
		return nil
	}
	return model.StringPtr(*s.state.Settings.ResetTime)
}

// Checklist returns a copy of the checklist with id.
func (s *Store) Checklist(id string) (model.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.state.FindChecklist(id)
	if i < 0 {
		return model.Checklist{}, ErrChecklistNotFound
	}
	return s.state.Checklists[i].Clone(), nil
}

// ActiveChecklist returns the active checklist, if any.
func (s *Store) ActiveChecklist() (model.Checklist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.ActiveChecklistID == nil {
		return model.Checklist{}, false
	}
	i := s.state.FindChecklist(*s.state.ActiveChecklistID)
	if i < 0 {
		return model.Checklist{}, false
	}
	return s.state.Checklists[i].Clone(), true
}

// ChecklistsInGroup returns copies of the checklists in groupID.
func (s *Store) ChecklistsInGroup(groupID string) []model.Checklist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in := s.state.ChecklistsInGroup(groupID)
	out := make([]model.Checklist, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

// GroupLabel returns the display label of g, localizing the default group.
func (s *Store) GroupLabel(g model.ChecklistGroup) string {
	if g.Name == model.DefaultGroupName {
		return s.bundle.DefaultGroupLabel()
	}
	return g.Name
}

// slice identifies an independently persisted part of the state.
type slice uint8

const (
	sliceChecklists slice = 1 << iota
	sliceGroups
	sliceSettings
	sliceActiveChecklist
	sliceActiveGroup

	sliceAll = sliceChecklists | sliceGroups | sliceSettings | sliceActiveChecklist | sliceActiveGroup
)

// persistLocked enqueues the given slices. The caller holds s.mu.
func (s *Store) persistLocked(parts slice) {
	if parts&sliceChecklists != 0 {
		s.writer.EnqueueJSON(store.KeyChecklists, s.state.Checklists)
	}
	if parts&sliceGroups != 0 {
		s.writer.EnqueueJSON(store.KeyGroups, s.state.Groups)
	}
	if parts&sliceSettings != 0 {
		s.writer.EnqueueJSON(store.KeySettings, s.state.Settings)
	}
	if parts&sliceActiveChecklist != 0 {
		s.writer.EnqueueJSON(store.KeyActiveChecklist, s.state.ActiveChecklistID)
	}
	if parts&sliceActiveGroup != 0 {
		s.writer.EnqueueJSON(store.KeyActiveGroup, s.state.ActiveGroupID)
	}
}

// SaveToStorage writes every slice and waits for the writes to land.
func (s *Store) SaveToStorage(ctx context.Context) error {
	s.mu.RLock()
	s.persistLocked(sliceAll)
	s.writer.EnqueueJSON(store.KeySchemaVersion, CurrentSchemaVersion)
	s.mu.RUnlock()
	return s.writer.Flush(ctx)
}

// Flush waits for pending background writes.
func (s *Store) Flush(ctx context.Context) error {
	return s.writer.Flush(ctx)
}

// ResetStorage wipes persisted data and re-initializes a fresh state.
func (s *Store) ResetStorage(ctx context.Context) error {
	if err := s.writer.Flush(ctx); err != nil {
		return err
	}
	if err := s.kv.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = model.AppState{IsLoading: true}
	s.mu.Unlock()
	s.log.Info("storage cleared")
	return s.Initialize(ctx)
}

func (s *Store) nowMillis() int64 {
	return model.Millis(s.clock.Now())
}

// touch refreshes c.UpdatedAt, keeping it strictly increasing.
func (s *Store) touch(c *model.Checklist) {
	now := s.nowMillis()
	if now <= c.UpdatedAt {
		now = c.UpdatedAt + 1
	}
	c.UpdatedAt = now
}

func validateName(name string) error {
	if model.ValidateTitle(name) != nil {
		return ErrEmptyName
	}
	return nil
}
