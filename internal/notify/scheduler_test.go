package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/check-me-out/internal/model"
)

func reminder(at string) model.NotificationSettings {
	return model.NotificationSettings{Enabled: true, Time: at, Title: "Check", Body: "Before you go"}
}

func TestNextTrigger(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 30, 0, 0, time.Local)

	next, ok := NextTrigger(now, reminder("09:00"))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local), next)

	next, ok = NextTrigger(now, reminder("08:30"))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 16, 8, 30, 0, 0, time.Local), next)

	_, ok = NextTrigger(now, model.NotificationSettings{Enabled: false, Time: "09:00"})
	assert.False(t, ok)

	_, ok = NextTrigger(now, reminder("25:00"))
	assert.False(t, ok)
}

func TestDailySchedulerFiresOncePerDay(t *testing.T) {
	trigger := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	now := func() time.Time { return trigger.Add(-30 * time.Millisecond) }

	s := NewDailyScheduler(4, now, nil)
	s.Start()
	defer s.Stop()

	require.NoError(t, s.Schedule(context.Background(), reminder("09:00")))

	n := waitNotification(t, s.C(), time.Second)
	assert.Equal(t, "Check", n.Title)
	assert.Equal(t, model.Millis(trigger), n.FiredAt)
	assert.False(t, n.Test)

	next, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, trigger.AddDate(0, 0, 1), next)

	select {
	case extra := <-s.C():
		t.Fatalf("unexpected second notification %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDailySchedulerRescheduleReplaces(t *testing.T) {
	base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)
	s := NewDailyScheduler(1, func() time.Time { return base }, nil)

	require.NoError(t, s.Schedule(context.Background(), reminder("09:00")))
	require.NoError(t, s.Schedule(context.Background(), reminder("10:15")))

	next, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 10, next.Hour())
	assert.Equal(t, 15, next.Minute())

	require.NoError(t, s.Schedule(context.Background(), model.NotificationSettings{Enabled: false, Time: "10:15"}))
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestDailySchedulerRejectsInvalidTime(t *testing.T) {
	s := NewDailyScheduler(1, nil, nil)
	err := s.Schedule(context.Background(), reminder("9"))
	assert.ErrorIs(t, err, model.ErrInvalidClock)
}

func TestSendTest(t *testing.T) {
	s := NewDailyScheduler(1, nil, nil)
	s.Start()

	require.NoError(t, s.SendTest("Hello", "World"))
	n := waitNotification(t, s.C(), time.Second)
	assert.True(t, n.Test)
	assert.Equal(t, "Hello", n.Title)

	// buffer of one: the second undelivered notification is dropped
	require.NoError(t, s.SendTest("a", "b"))
	require.NoError(t, s.SendTest("c", "d"))
	assert.Equal(t, uint64(1), s.Dropped())

	s.Stop()
	assert.ErrorIs(t, s.SendTest("x", "y"), ErrStopped)
	assert.ErrorIs(t, s.Schedule(context.Background(), reminder("09:00")), ErrStopped)
}

func TestStopWithoutStartClosesC(t *testing.T) {
	s := NewDailyScheduler(1, nil, nil)
	s.Stop()
	s.Stop()

	select {
	case _, ok := <-s.C():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("C was not closed")
	}
	assert.ErrorIs(t, s.SendTest("x", "y"), ErrStopped)
}

func waitNotification(t *testing.T, ch <-chan model.Notification, timeout time.Duration) model.Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for notification")
		return model.Notification{}
	}
}
