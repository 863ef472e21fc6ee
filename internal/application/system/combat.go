package system

import (
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// CombatSystem resolves collisions, awards score and detects the player going down
type CombatSystem struct {
	config *config.TuningConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.TuningConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// ResolveTick runs one collision tick: every enemy descends and is tested in
// the same step, then enemy bullets are tested against the player.
// Does nothing once the player is down.
func (s *CombatSystem) ResolveTick(w *world.World) {
	if w.PlayerDown {
		return
	}
	s.resolveEnemies(w)
	if w.PlayerDown {
		return
	}
	s.resolveEnemyBullets(w)
}

// resolveEnemies advances each enemy and tests it, in insertion order.
// An unshielded contact stops the scan immediately; enemies after it are left as they were.
func (s *CombatSystem) resolveEnemies(w *world.World) {
	playerRect := w.PlayerRect()
	shielded := w.Shielded()

	kept := make([]entity.Enemy, 0, len(w.Enemies))
	for i, e := range w.Enemies {
		newY := e.Y + s.config.Speeds.Enemy
		box := e.RectAt(newY, w.Dims)

		if hit, ok := s.firstBulletHit(w, box); ok {
			w.RemoveBullet(hit)
			w.AddScore(s.config.Scoring.EnemyDestroyed)
			w.SpawnExplosion(e.X, newY)
			w.Emit(world.EnemyDestroyed{EnemyID: e.ID, X: e.X, Y: newY})
			continue
		}

		if box.Overlaps(playerRect) {
			if shielded {
				continue
			}
			kept = append(kept, w.Enemies[i:]...)
			s.playerDown(w, world.HitByEnemy)
			break
		}

		if newY < w.Area.Height {
			e.Y = newY
			kept = append(kept, e)
		}
	}
	w.Enemies = kept
}

// firstBulletHit returns the first player bullet, in sequence order, overlapping box
func (s *CombatSystem) firstBulletHit(w *world.World, box entity.Rect) (entity.EntityID, bool) {
	for _, b := range w.Bullets {
		if b.Rect(w.Dims).Overlaps(box) {
			return b.ID, true
		}
	}
	return 0, false
}

// resolveEnemyBullets ends the run on the first enemy bullet touching an unshielded player.
// Bullets touching a shielded player stay in flight.
func (s *CombatSystem) resolveEnemyBullets(w *world.World) {
	if w.Shielded() {
		return
	}
	playerRect := w.PlayerRect()
	for _, b := range w.EnemyBullets {
		if b.Rect(w.Dims).Overlaps(playerRect) {
			s.playerDown(w, world.HitByEnemyBullet)
			return
		}
	}
}

func (s *CombatSystem) playerDown(w *world.World, cause world.HitCause) {
	if w.PlayerDown {
		return
	}
	w.PlayerDown = true
	w.Emit(world.PlayerHit{Cause: cause})
}

// CollectPowerUps consumes every power-up overlapping the player and (re)arms its
// effect for the full duration. Re-collecting restarts the countdown; it never stacks.
func (s *CombatSystem) CollectPowerUps(w *world.World) int {
	if w.PlayerDown {
		return 0
	}

	playerRect := w.PlayerRect()
	duration := s.config.Timing.Effect()

	collected := 0
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if !p.Rect(w.Dims).Overlaps(playerRect) {
			kept = append(kept, p)
			continue
		}
		switch p.Kind {
		case entity.PowerUpShield:
			w.ShieldRemaining = duration
		case entity.PowerUpDoubleShot:
			w.DoubleShotRemaining = duration
		}
		w.Emit(world.PowerUpCollected{Kind: p.Kind})
		collected++
	}
	clear(w.PowerUps[len(kept):])
	w.PowerUps = kept
	return collected
}
