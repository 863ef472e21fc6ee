package system

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// powerUpKinds is the pool a spawned power-up kind is drawn from
var powerUpKinds = []entity.PowerUpKind{entity.PowerUpShield, entity.PowerUpDoubleShot}

// SpawnSystem creates enemies, enemy bullets, power-ups and player bullets.
// All randomness comes from the injected RNG so a seed reproduces a run.
type SpawnSystem struct {
	config *config.TuningConfig
	rng    *rand.Rand
	logger *log.Logger
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(cfg *config.TuningConfig, rng *rand.Rand, logger *log.Logger) *SpawnSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &SpawnSystem{config: cfg, rng: rng, logger: logger}
}

// SpawnEnemy places one enemy at a random x along the top edge
func (s *SpawnSystem) SpawnEnemy(w *world.World) entity.EntityID {
	x := s.rng.Float64() * (w.Area.Width - w.Dims.Enemy.Width)
	id := w.SpawnEnemy(x, 0)
	s.logger.Debug("enemy spawned", "id", id, "x", x)
	return id
}

// EnemyFire makes every live enemy fire one bullet from its bottom-center
func (s *SpawnSystem) EnemyFire(w *world.World) int {
	for _, e := range w.Enemies {
		x, y := e.Muzzle(w.Dims)
		w.SpawnEnemyBullet(x, y)
	}
	return len(w.Enemies)
}

// MaybeSpawnPowerUp rolls the spawn chance and, on success, places a power-up
// of random kind at a random x along the top edge.
func (s *SpawnSystem) MaybeSpawnPowerUp(w *world.World) (entity.EntityID, bool) {
	if s.rng.Float64() >= s.config.Spawn.PowerUpChance {
		return 0, false
	}
	kind := powerUpKinds[s.rng.Intn(len(powerUpKinds))]
	x := s.rng.Float64() * (w.Area.Width - w.Dims.PowerUp.Width)
	id := w.SpawnPowerUp(x, 0, kind)
	s.logger.Debug("power-up spawned", "id", id, "kind", kind, "x", x)
	return id, true
}

// FirePlayer fires from the player's top edge while the firing latch is set.
// With double shot two bullets straddle the center. Returns the bullet count.
func (s *SpawnSystem) FirePlayer(w *world.World) int {
	if !w.Firing {
		return 0
	}

	cx := w.Player.CenterX(w.Dims)
	y := w.Player.Y
	bw := w.Dims.Bullet.Width

	count := 1
	if w.DoubleShot() {
		offset := s.config.Spawn.DoubleShotOffset
		w.SpawnBullet(cx-offset, y)
		w.SpawnBullet(cx+offset-bw, y)
		count = 2
	} else {
		w.SpawnBullet(cx-bw/2, y)
	}

	w.Emit(world.BulletFired{Count: count})
	return count
}
