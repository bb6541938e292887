package reset_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/reset"
	"github.com/nhle/check-me-out/internal/store"
	"github.com/nhle/check-me-out/tests/testutil"
)

type fakeTarget struct {
	resetTime *string
	resets    atomic.Int32
}

func (f *fakeTarget) ResetTime() *string  { return f.resetTime }
func (f *fakeTarget) ResetAllChecklists() { f.resets.Add(1) }

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 15, hour, minute, 0, 0, time.Local)
}

func TestShouldReset(t *testing.T) {
	seven := model.StringPtr("07:00")

	tests := []struct {
		name      string
		now       time.Time
		resetTime *string
		last      string
		want      bool
	}{
		{name: "disabled", now: at(9, 0), resetTime: nil, want: false},
		{name: "exact minute", now: at(7, 0), resetTime: seven, want: true},
		{name: "catch up later in the day", now: at(22, 30), resetTime: seven, last: "2024-03-14", want: true},
		{name: "before reset time", now: at(6, 59), resetTime: seven, want: false},
		{name: "already reset today", now: at(7, 0), resetTime: seven, last: "2024-03-15", want: false},
		{name: "invalid reset time", now: at(7, 0), resetTime: model.StringPtr("7am"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reset.ShouldReset(tt.now, tt.resetTime, tt.last))
		})
	}
}

func TestCheckIsIdempotentWithinADay(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestStore(t)
	target := &fakeTarget{resetTime: model.StringPtr("07:00")}

	now := at(8, 0)
	c := reset.NewChecker(kv, target, func() time.Time { return now }, zap.NewNop())

	did, err := c.Check(ctx)
	require.NoError(t, err)
	assert.True(t, did)

	last, err := c.LastResetDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", last)

	now = at(23, 59)
	did, err = c.Check(ctx)
	require.NoError(t, err)
	assert.False(t, did)
	assert.Equal(t, int32(1), target.resets.Load())

	// next day before the reset time: still nothing
	now = at(6, 0).AddDate(0, 0, 1)
	did, err = c.Check(ctx)
	require.NoError(t, err)
	assert.False(t, did)

	now = at(7, 0).AddDate(0, 0, 1)
	did, err = c.Check(ctx)
	require.NoError(t, err)
	assert.True(t, did)
	assert.Equal(t, int32(2), target.resets.Load())
}

func TestCheckInertWithoutResetTime(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestStore(t)
	target := &fakeTarget{}

	c := reset.NewChecker(kv, target, func() time.Time { return at(12, 0) }, nil)
	did, err := c.Check(ctx)
	require.NoError(t, err)
	assert.False(t, did)

	_, err = kv.Get(ctx, store.KeyLastResetDate)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTickerTrigger(t *testing.T) {
	kv := testutil.NewTestStore(t)
	target := &fakeTarget{resetTime: model.StringPtr("00:00")}
	c := reset.NewChecker(kv, target, nil, nil)

	tk := reset.NewTicker(c, time.Hour, nil)
	tk.Start(context.Background())
	defer tk.Stop()

	tk.Trigger()
	require.Eventually(t, func() bool {
		return target.resets.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// same day: further triggers are no-ops
	tk.Trigger()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), target.resets.Load())
}

func TestTickerPolls(t *testing.T) {
	kv := testutil.NewTestStore(t)
	target := &fakeTarget{resetTime: model.StringPtr("00:00")}
	c := reset.NewChecker(kv, target, nil, nil)

	tk := reset.NewTicker(c, 20*time.Millisecond, nil)
	tk.Start(context.Background())

	require.Eventually(t, func() bool {
		return target.resets.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	tk.Stop()
	tk.Stop()
}

func TestTickerStartAfterStopIsNoop(t *testing.T) {
	kv := testutil.NewTestStore(t)
	target := &fakeTarget{resetTime: model.StringPtr("00:00")}
	c := reset.NewChecker(kv, target, nil, nil)

	tk := reset.NewTicker(c, time.Hour, nil)
	tk.Start(context.Background())
	tk.Stop()

	assert.NotPanics(t, func() {
		tk.Start(context.Background())
		tk.Stop()
	})

	tk.Trigger()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), target.resets.Load())
}
