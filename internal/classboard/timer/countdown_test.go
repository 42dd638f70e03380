package timer

import (
	"testing"

	"classboard/internal/classboard/widgetconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownStart(t *testing.T) {
	t.Run("zero duration is rejected", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 0, Seconds: 0})
		assert.ErrorIs(t, c.Start(), ErrNotRunnable)
		assert.False(t, c.Running())
		assert.Equal(t, CountdownIdle, c.State())
	})

	t.Run("runs from configured duration", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 2, Seconds: 30})
		require.NoError(t, c.Start())
		assert.True(t, c.Running())
		assert.Equal(t, 150, c.Remaining())
	})
}

func TestCountdownTickExpiry(t *testing.T) {
	c := NewCountdown(widgetconfig.CountdownConfig{Seconds: 1, Alert: true})
	require.NoError(t, c.Start())

	events := c.Tick()
	require.Len(t, events, 1)
	assert.Equal(t, EventExpired, events[0].Kind)
	assert.True(t, events[0].Alert)
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, CountdownExpired, c.State())

	assert.Empty(t, c.Tick(), "expired countdown must not emit again")
	assert.ErrorIs(t, c.Start(), ErrNotRunnable)
}

func TestCountdownExpiryWithoutAlert(t *testing.T) {
	c := NewCountdown(widgetconfig.CountdownConfig{Seconds: 2, Alert: false})
	require.NoError(t, c.Start())
	assert.Empty(t, c.Tick())
	events := c.Tick()
	require.Len(t, events, 1)
	assert.False(t, events[0].Alert)
}

func TestCountdownPauseAndReset(t *testing.T) {
	c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1})
	require.NoError(t, c.Start())
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	c.Pause()
	assert.Equal(t, 50, c.Remaining())
	assert.Empty(t, c.Tick(), "paused countdown does not tick")
	assert.Equal(t, 50, c.Remaining())

	require.NoError(t, c.Start())
	c.Tick()
	assert.Equal(t, 49, c.Remaining())

	c.Reset()
	assert.False(t, c.Running())
	assert.Equal(t, 60, c.Remaining())
}

func TestCountdownAdjust(t *testing.T) {
	tests := []struct {
		name         string
		start        widgetconfig.CountdownConfig
		dMin, dSec   int
		wantMinutes  int
		wantSeconds  int
		wantRemained int
	}{
		{"add a minute", widgetconfig.CountdownConfig{Minutes: 2, Seconds: 30}, 1, 0, 3, 30, 210},
		{"minutes floor at zero", widgetconfig.CountdownConfig{Minutes: 0, Seconds: 10}, -1, 0, 0, 10, 10},
		{"seconds wrap", widgetconfig.CountdownConfig{Minutes: 1, Seconds: 50}, 0, 15, 1, 5, 65},
		{"seconds floor at zero", widgetconfig.CountdownConfig{Minutes: 1, Seconds: 5}, 0, -15, 1, 0, 60},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCountdown(tc.start)
			cfg, err := c.Adjust(tc.dMin, tc.dSec)
			require.NoError(t, err)
			assert.Equal(t, tc.wantMinutes, cfg.Minutes)
			assert.Equal(t, tc.wantSeconds, cfg.Seconds)
			assert.Equal(t, tc.wantRemained, c.Remaining())
		})
	}

	t.Run("rejected while running", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1})
		require.NoError(t, c.Start())
		cfg, err := c.Adjust(1, 0)
		assert.ErrorIs(t, err, ErrRunning)
		assert.Equal(t, 1, cfg.Minutes)
		assert.Equal(t, 60, c.Remaining())
	})

	t.Run("revives an expired countdown", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Seconds: 1})
		require.NoError(t, c.Start())
		c.Tick()
		_, err := c.Adjust(0, 5)
		require.NoError(t, err)
		assert.Equal(t, CountdownIdle, c.State())
		assert.Equal(t, 6, c.Remaining())
	})
}

func TestCountdownAddTime(t *testing.T) {
	c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 2})
	assert.ErrorIs(t, c.AddTime(60), ErrNotRunning)
	assert.Equal(t, 120, c.Remaining())

	require.NoError(t, c.Start())
	require.NoError(t, c.AddTime(60))
	assert.Equal(t, 180, c.Remaining())
	assert.Equal(t, 120, c.Snapshot().Total, "configuration is left alone")

	require.NoError(t, c.AddTime(-60))
	assert.Equal(t, 120, c.Remaining())

	for range 61 {
		c.Tick()
	}
	assert.Equal(t, 59, c.Remaining())
	assert.ErrorIs(t, c.AddTime(-60), ErrNotEnoughTime)
	assert.Equal(t, 59, c.Remaining())

	require.NoError(t, c.AddTime(-59))
	assert.Equal(t, 0, c.Remaining())
	events := c.Tick()
	require.Len(t, events, 1)
	assert.Equal(t, EventExpired, events[0].Kind)
	assert.ErrorIs(t, c.AddTime(60), ErrNotRunning)
}

func TestCountdownConfigure(t *testing.T) {
	t.Run("running countdown ignores new duration", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1})
		require.NoError(t, c.Start())
		c.Tick()
		c.Configure(widgetconfig.CountdownConfig{Minutes: 10})
		assert.Equal(t, 59, c.Remaining())

		c.Reset()
		assert.Equal(t, 600, c.Remaining())
	})

	t.Run("idle countdown follows new duration", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1})
		c.Configure(widgetconfig.CountdownConfig{Minutes: 2, Seconds: 5})
		assert.Equal(t, 125, c.Remaining())
	})

	t.Run("paused progress survives unrelated changes", func(t *testing.T) {
		c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1, Alert: true})
		require.NoError(t, c.Start())
		c.Tick()
		c.Pause()
		c.Configure(widgetconfig.CountdownConfig{Minutes: 1, Alert: false})
		assert.Equal(t, 59, c.Remaining())
	})
}

func TestCountdownMount(t *testing.T) {
	c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1, AutoStart: true})
	assert.True(t, c.Mount())
	assert.True(t, c.Running())
	assert.False(t, c.Mount(), "already running")

	idle := NewCountdown(widgetconfig.CountdownConfig{AutoStart: true})
	assert.False(t, idle.Mount(), "nothing to count")

	manual := NewCountdown(widgetconfig.CountdownConfig{Minutes: 1})
	assert.False(t, manual.Mount())
}

func TestCountdownSnapshot(t *testing.T) {
	c := NewCountdown(widgetconfig.CountdownConfig{Minutes: 2, Seconds: 30})
	require.NoError(t, c.Start())
	for i := 0; i < 75; i++ {
		c.Tick()
	}
	snap := c.Snapshot()
	assert.Equal(t, "01:15", snap.Display)
	assert.Equal(t, 75, snap.Remaining)
	assert.Equal(t, 150, snap.Total)
	assert.InDelta(t, 50.0, snap.Progress, 0.001)
}
