package system

import (
	"time"

	"github.com/younwookim/skyraid/internal/domain/world"
)

// EffectSystem counts down timed effects and ages explosions
type EffectSystem struct{}

// NewEffectSystem creates a new effect system
func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

// Countdown subtracts dt from each active effect, stopping at zero
func (s *EffectSystem) Countdown(w *world.World, dt time.Duration) {
	w.ShieldRemaining = countdown(w.ShieldRemaining, dt)
	w.DoubleShotRemaining = countdown(w.DoubleShotRemaining, dt)
}

func countdown(remaining, dt time.Duration) time.Duration {
	if remaining <= dt {
		return 0
	}
	return remaining - dt
}

// AgeExplosions removes the oldest explosion, if any
func (s *EffectSystem) AgeExplosions(w *world.World) bool {
	if len(w.Explosions) == 0 {
		return false
	}
	w.Explosions = w.Explosions[1:]
	return true
}
