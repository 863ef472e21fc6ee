package world

import "github.com/younwookim/skyraid/internal/domain/entity"

// Snapshot is an immutable copy of the world for drawing
type Snapshot struct {
	Area         Area
	Dims         entity.Dimensions
	Player       entity.Player
	Bullets      []entity.Bullet
	EnemyBullets []entity.EnemyBullet
	Enemies      []entity.Enemy
	PowerUps     []entity.PowerUp
	Explosions   []entity.Explosion
	Score        int
	Shielded     bool
	DoubleShot   bool
}

// Snapshot copies the current state. The returned slices do not alias the world.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Area:         w.Area,
		Dims:         w.Dims,
		Player:       w.Player,
		Bullets:      append([]entity.Bullet(nil), w.Bullets...),
		EnemyBullets: append([]entity.EnemyBullet(nil), w.EnemyBullets...),
		Enemies:      append([]entity.Enemy(nil), w.Enemies...),
		PowerUps:     append([]entity.PowerUp(nil), w.PowerUps...),
		Explosions:   append([]entity.Explosion(nil), w.Explosions...),
		Score:        w.Score,
		Shielded:     w.Shielded(),
		DoubleShot:   w.DoubleShot(),
	}
}
