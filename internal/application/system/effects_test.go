package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectSystem_Countdown(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		dt        time.Duration
		want      time.Duration
	}{
		{"inactive stays zero", 0, 16 * time.Millisecond, 0},
		{"partial", 10 * time.Second, 16 * time.Millisecond, 10*time.Second - 16*time.Millisecond},
		{"exact expiry", 16 * time.Millisecond, 16 * time.Millisecond, 0},
		{"overshoot floors at zero", 5 * time.Millisecond, 16 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createTestWorld(createTestConfig())
			w.ShieldRemaining = tt.remaining
			w.DoubleShotRemaining = tt.remaining

			NewEffectSystem().Countdown(w, tt.dt)

			assert.Equal(t, tt.want, w.ShieldRemaining)
			assert.Equal(t, tt.want, w.DoubleShotRemaining)
		})
	}
}

func TestEffectSystem_EffectExpiresAfterDuration(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	s := NewEffectSystem()
	w.ShieldRemaining = cfg.Timing.Effect()

	steps := 0
	for w.Shielded() {
		s.Countdown(w, cfg.Timing.Tick())
		steps++
	}

	// 10000 / 16 = 625
	assert.Equal(t, 625, steps)
}

func TestEffectSystem_AgeExplosions(t *testing.T) {
	w := createTestWorld(createTestConfig())
	s := NewEffectSystem()

	assert.False(t, s.AgeExplosions(w))

	w.SpawnExplosion(1, 1)
	second := w.SpawnExplosion(2, 2)

	require.True(t, s.AgeExplosions(w))
	require.Len(t, w.Explosions, 1)
	assert.Equal(t, second, w.Explosions[0].ID, "oldest explosion goes first")

	require.True(t, s.AgeExplosions(w))
	assert.Empty(t, w.Explosions)
}
