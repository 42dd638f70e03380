package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerSchedulerRunsAndCancels(t *testing.T) {
	s := NewTickerScheduler(context.Background())
	defer s.Stop()

	var n atomic.Int32
	s.Schedule("w1", time.Millisecond, func() { n.Add(1) })
	assert.True(t, s.Active("w1"))
	assert.Equal(t, 1, s.Len())

	assert.Eventually(t, func() bool { return n.Load() >= 3 }, time.Second, time.Millisecond)

	s.Cancel("w1")
	assert.False(t, s.Active("w1"))
	assert.Equal(t, 0, s.Len())
}

func TestTickerSchedulerCancelFromCallback(t *testing.T) {
	s := NewTickerScheduler(context.Background())
	defer s.Stop()

	done := make(chan struct{})
	var once atomic.Bool
	s.Schedule("w1", time.Millisecond, func() {
		s.Cancel("w1")
		if once.CompareAndSwap(false, true) {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never ran")
	}
	assert.False(t, s.Active("w1"))
}

func TestTickerSchedulerStop(t *testing.T) {
	s := NewTickerScheduler(context.Background())
	s.Schedule("a", time.Millisecond, func() {})
	s.Schedule("b", time.Millisecond, func() {})
	s.Stop()

	assert.Equal(t, 0, s.Len())
	s.Schedule("c", time.Millisecond, func() {})
	assert.False(t, s.Active("c"), "stopped scheduler accepts nothing")
}

func TestManualScheduler(t *testing.T) {
	m := NewManualScheduler()
	count := 0
	m.Schedule("w", time.Second, func() {
		count++
		if count == 3 {
			m.Cancel("w")
		}
	})

	ran := m.Fire("w", 10)
	assert.Equal(t, 3, ran)
	assert.Equal(t, 3, count)
	assert.False(t, m.Active("w"))
	assert.Equal(t, 0, m.Fire("missing", 1))
}
