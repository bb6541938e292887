package store

import (
	"context"
	"encoding/json"
	"errors"
	gosync "sync"
	"time"

	"go.uber.org/zap"
)

// writeTimeout bounds a single background write.
const writeTimeout = 10 * time.Second

var ErrWriterClosed = errors.New("store: writer closed")

type pendingOp struct {
	value  []byte
	remove bool
}

// Writer persists values in the background. Pending writes to the same key
// are coalesced so only the latest value is written, and a single worker
// applies keys in the order they were first enqueued. Failures are logged and
// never reported to the caller that enqueued the write.
type Writer struct {
	kv  KV
	log *zap.Logger

	mu       gosync.Mutex
	pending  map[string]pendingOp
	order    []string
	writing  bool
	waiters  []chan struct{}
	closed   bool
	failures int

	wake chan struct{}
	done chan struct{}
}

// NewWriter starts a background writer over kv.
func NewWriter(kv KV, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Writer{
		kv:      kv,
		log:     log.Named("writer"),
		pending: make(map[string]pendingOp),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

// Enqueue schedules value to be stored under key.
func (w *Writer) Enqueue(key string, value []byte) {
	w.enqueue(key, pendingOp{value: value})
}

// EnqueueJSON encodes v now and schedules the encoded value for key. The
// encoding happens synchronously so later mutations of v are not observed.
func (w *Writer) EnqueueJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		w.log.Error("encoding value", zap.String("key", key), zap.Error(err))
		return
	}
	w.Enqueue(key, raw)
}

// EnqueueRemove schedules key for deletion.
func (w *Writer) EnqueueRemove(key string) {
	w.enqueue(key, pendingOp{remove: true})
}

func (w *Writer) enqueue(key string, op pendingOp) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.log.Warn("write dropped after close", zap.String("key", key))
		return
	}
	if _, ok := w.pending[key]; !ok {
		w.order = append(w.order, key)
	}
	w.pending[key] = op
	select {
	case w.wake <- struct{}{}:
	default:
	}
	w.mu.Unlock()
}

// Flush blocks until every write enqueued before the call has been applied,
// or ctx is done.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.idleLocked() {
		w.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	w.waiters = append(w.waiters, ch)
	w.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Failures returns the number of writes that failed since start.
func (w *Writer) Failures() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failures
}

// Close drains pending writes and stops the worker.
func (w *Writer) Close(ctx context.Context) error {
	err := w.Flush(ctx)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return err
	}
	w.closed = true
	close(w.wake)
	w.mu.Unlock()

	<-w.done
	return err
}

func (w *Writer) idleLocked() bool {
	return len(w.pending) == 0 && !w.writing
}

func (w *Writer) loop() {
	defer close(w.done)
	for range w.wake {
		w.drain()
	}
}

func (w *Writer) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			w.writing = false
			waiters := w.waiters
			w.waiters = nil
			w.mu.Unlock()
			for _, ch := range waiters {
				close(ch)
			}
			return
		}
		key := w.order[0]
		w.order = w.order[1:]
		op := w.pending[key]
		delete(w.pending, key)
		w.writing = true
		w.mu.Unlock()

		w.apply(key, op)
	}
}

func (w *Writer) apply(key string, op pendingOp) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var err error
	if op.remove {
		err = w.kv.Remove(ctx, key)
	} else {
		err = w.kv.Set(ctx, key, op.value)
	}
	if err != nil {
		w.mu.Lock()
		w.failures++
		w.mu.Unlock()
		w.log.Error("background write failed", zap.String("key", key), zap.Error(err))
	}
}
