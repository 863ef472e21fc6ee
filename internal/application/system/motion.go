package system

import (
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// MotionSystem advances projectiles and power-ups and culls what leaves the area.
// Enemy descent is fused into collision resolution (see CombatSystem).
type MotionSystem struct {
	config *config.TuningConfig
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(cfg *config.TuningConfig) *MotionSystem {
	return &MotionSystem{config: cfg}
}

// Tick moves player bullets up and enemy bullets down by one tick
func (s *MotionSystem) Tick(w *world.World) {
	s.moveBullets(w)
	s.moveEnemyBullets(w)
}

// moveBullets filters in place; a bullet is gone once its top reaches 0
func (s *MotionSystem) moveBullets(w *world.World) {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Y -= s.config.Speeds.Bullet
		if b.Y > 0 {
			kept = append(kept, b)
		}
	}
	clear(w.Bullets[len(kept):])
	w.Bullets = kept
}

func (s *MotionSystem) moveEnemyBullets(w *world.World) {
	kept := w.EnemyBullets[:0]
	for _, b := range w.EnemyBullets {
		b.Y += s.config.Speeds.EnemyBullet
		if b.Y < w.Area.Height {
			kept = append(kept, b)
		}
	}
	clear(w.EnemyBullets[len(kept):])
	w.EnemyBullets = kept
}

// StepPowerUps moves power-ups down one power-up step and culls those past the bottom
func (s *MotionSystem) StepPowerUps(w *world.World) {
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		p.Y += s.config.Speeds.PowerUp
		if p.Y < w.Area.Height {
			kept = append(kept, p)
		}
	}
	clear(w.PowerUps[len(kept):])
	w.PowerUps = kept
}
