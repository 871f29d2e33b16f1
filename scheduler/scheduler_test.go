package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEvery_Fires(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.Every("tick", 20*time.Millisecond, func() {
		atomic.AddInt32(&count, 1)
	})

	time.Sleep(120 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&count), int32(3))
}

func TestEvery_Replaces(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count1, count2 int32
	s.Every("job", 20*time.Millisecond, func() { atomic.AddInt32(&count1, 1) })
	time.Sleep(30 * time.Millisecond)
	s.Every("job", 20*time.Millisecond, func() { atomic.AddInt32(&count2, 1) })
	time.Sleep(80 * time.Millisecond)

	snap1 := atomic.LoadInt32(&count1)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, snap1, atomic.LoadInt32(&count1), "replaced job must stop")
	assert.Positive(t, atomic.LoadInt32(&count2))
}

func TestEvery_NonPositiveIntervalIsSkipped(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	// A disabled job in the config maps to a zero interval; registering
	// it must not panic and must not start a ticker.
	s.Every("disabled", 0, func() {})
	s.Every("negative", -time.Second, func() {})
	assert.Empty(t, s.Names())
}

func TestAfter_FiresOnce(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.After("once", 30*time.Millisecond, func() {
		atomic.AddInt32(&count, 1)
	})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&count))
}

func TestAfter_ReplacesCancelsOld(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.After("d", 500*time.Millisecond, func() { atomic.AddInt32(&count, 1) })
	s.After("d", 30*time.Millisecond, func() { atomic.AddInt32(&count, 10) })
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(10), atomic.LoadInt32(&count))
}

func TestCancel(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.Every("job", 20*time.Millisecond, func() { atomic.AddInt32(&count, 1) })
	time.Sleep(50 * time.Millisecond)
	s.Cancel("job")
	snap := atomic.LoadInt32(&count)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, snap, atomic.LoadInt32(&count), "job must stop after Cancel")

	// Cancelling an unknown name must not panic.
	s.Cancel("nope")
}

func TestStop_StopsEverything(t *testing.T) {
	s := New(zap.NewNop())

	var count int32
	s.Every("a", 20*time.Millisecond, func() { atomic.AddInt32(&count, 1) })
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	time.Sleep(30 * time.Millisecond)
	snap := atomic.LoadInt32(&count)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, snap, atomic.LoadInt32(&count))

	s.Stop() // idempotent
}

func TestNames(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	require.Empty(t, s.Names())
	s.Every("beta", time.Hour, func() {})
	s.Every("alpha", time.Hour, func() {})
	assert.Equal(t, []string{"alpha", "beta"}, s.Names())

	s.Cancel("alpha")
	assert.Equal(t, []string{"beta"}, s.Names())
}

func TestPanicRecovery(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var after int32
	s.Every("panic", 20*time.Millisecond, func() {
		if atomic.CompareAndSwapInt32(&after, 0, 1) {
			panic("oops")
		}
		atomic.AddInt32(&after, 1)
	})
	// The job keeps firing after the first run panics.
	time.Sleep(120 * time.Millisecond)
	assert.Greater(t, atomic.LoadInt32(&after), int32(1))
}
