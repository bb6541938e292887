package state

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nhle/check-me-out/internal/locale"
	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/store"
	"github.com/nhle/check-me-out/tests/testutil"
)

type recordingScheduler struct {
	mu    sync.Mutex
	calls []model.NotificationSettings
}

func (r *recordingScheduler) Schedule(_ context.Context, n model.NotificationSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, n)
	return nil
}

func (r *recordingScheduler) last() (model.NotificationSettings, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return model.NotificationSettings{}, 0
	}
	return r.calls[len(r.calls)-1], len(r.calls)
}

type fixture struct {
	kv        *store.SQLiteStore
	writer    *store.Writer
	scheduler *recordingScheduler
	now       time.Time
	store     *Store
}

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%03d", n.Add(1))
	}
}

// newFixture builds a Store over a fresh in-memory database at a fixed
// clock. seed runs against the database before the Store is created.
func newFixture(t *testing.T, seed func(kv store.KV)) *fixture {
	t.Helper()

	f := &fixture{
		kv:        testutil.NewTestStore(t),
		scheduler: &recordingScheduler{},
		now:       time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local),
	}
	f.writer = testutil.NewTestWriter(t, f.kv)
	if seed != nil {
		seed(f.kv)
	}
	f.store = New(f.kv, Options{
		Writer:    f.writer,
		Scheduler: f.scheduler,
		Clock:     ClockFunc(func() time.Time { return f.now }),
		NewID:     sequentialIDs(),
		Bundle:    locale.NewBundle(locale.En),
	})
	return f
}

func newInitialized(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, nil)
	require.NoError(t, f.store.Initialize(context.Background()))
	return f
}

func (f *fixture) flush(t *testing.T) {
	t.Helper()
	testutil.Flush(t, f.writer)
}

func seedJSON(t *testing.T, kv store.KV, key string, v any) {
	t.Helper()
	require.NoError(t, store.SetJSON(context.Background(), kv, key, v))
}

func (f *fixture) active(t *testing.T) model.Checklist {
	t.Helper()
	c, ok := f.store.ActiveChecklist()
	require.True(t, ok, "no active checklist")
	return c
}

func (f *fixture) defaultGroup(t *testing.T) model.ChecklistGroup {
	t.Helper()
	g, ok := f.store.Snapshot().GroupByName(model.DefaultGroupName)
	require.True(t, ok, "no default group")
	return g
}
