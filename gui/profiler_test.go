package gui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFrameMonitor(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := newFrameMonitor(start, 54)

	assert.False(t, m.Observe(start.Add(time.Second), 20), "ignored during warm-up")
	assert.False(t, m.Observe(start.Add(5*time.Second), 60), "healthy rate")
	assert.True(t, m.Observe(start.Add(5*time.Second), 40))
	assert.False(t, m.Observe(start.Add(8*time.Second), 40), "still cooling down")
	assert.True(t, m.Observe(start.Add(16*time.Second), 40))
}

func TestProfiler_Guards(t *testing.T) {
	t.Run("Cooldown", func(t *testing.T) {
		p := NewProfiler(t.TempDir(), zap.NewNop())
		p.lastCaptureTime = time.Now()

		err := p.CaptureProfile("test")
		require.ErrorIs(t, err, errCaptureCooldown)
		assert.False(t, p.IsProfiling())
	})

	t.Run("Already profiling", func(t *testing.T) {
		p := NewProfiler(t.TempDir(), zap.NewNop())
		p.isProfiling = true

		err := p.CaptureProfile("test")
		require.ErrorIs(t, err, errAlreadyProfiling)
	})
}
