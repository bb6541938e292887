package testutil

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewTestWriter starts a background writer over kv and closes it when the
// test completes.
func NewTestWriter(t *testing.T, kv store.KV) *store.Writer {
	t.Helper()

	w := store.NewWriter(kv, zap.NewNop())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := w.Close(ctx); err != nil {
			t.Errorf("closing test writer: %v", err)
		}
	})

	return w
}

// Flush waits for w to apply every pending write.
func Flush(t *testing.T, w *store.Writer) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("flushing writer: %v", err)
	}
}
