// Package world holds the authoritative simulation state shared by every tick processor.
package world

import (
	"fmt"
	"time"

	"github.com/younwookim/skyraid/internal/domain/entity"
)

// Area is the size of the play area
type Area struct {
	Width, Height float64
}

// World holds every entity sequence plus the scalar session state.
// It is owned by a single scheduling loop and is not safe for concurrent use.
type World struct {
	nextID entity.EntityID

	Area        Area
	Dims        entity.Dimensions
	SpawnMargin float64 // distance between the player spawn and the bottom edge

	Player       entity.Player
	Bullets      []entity.Bullet
	EnemyBullets []entity.EnemyBullet
	Enemies      []entity.Enemy
	PowerUps     []entity.PowerUp
	Explosions   []entity.Explosion

	Score  int
	Firing bool // firing latch, set while the pointer is held down

	// Remaining effect time; an effect is active while its countdown is positive
	ShieldRemaining     time.Duration
	DoubleShotRemaining time.Duration

	// PlayerDown is set by collision resolution on an unshielded hit
	PlayerDown bool

	events []Event
}

// NewWorld creates a world with the player at its spawn position
func NewWorld(area Area, dims entity.Dimensions, spawnMargin float64) *World {
	w := &World{
		nextID:      1, // 0 is "nil"
		Area:        area,
		Dims:        dims,
		SpawnMargin: spawnMargin,
	}
	w.Reset()
	return w
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Reset restores every entity and scalar to its initial value.
// The ID counter keeps running so identifiers are never reused.
func (w *World) Reset() {
	x, y := entity.SpawnPosition(w.Area.Width, w.Area.Height, w.Dims, w.SpawnMargin)
	w.Player = entity.NewPlayer(x, y)
	w.Bullets = make([]entity.Bullet, 0, 32)
	w.EnemyBullets = make([]entity.EnemyBullet, 0, 32)
	w.Enemies = make([]entity.Enemy, 0, 16)
	w.PowerUps = make([]entity.PowerUp, 0, 4)
	w.Explosions = make([]entity.Explosion, 0, 8)
	w.Score = 0
	w.Firing = false
	w.ShieldRemaining = 0
	w.DoubleShotRemaining = 0
	w.PlayerDown = false
	w.events = w.events[:0]
}

// ClearMoving empties every moving-entity sequence (bullets, enemies, power-ups)
func (w *World) ClearMoving() {
	w.Bullets = w.Bullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Enemies = w.Enemies[:0]
	w.PowerUps = w.PowerUps[:0]
}

// SpawnBullet appends a player bullet and returns its ID
func (w *World) SpawnBullet(x, y float64) entity.EntityID {
	id := w.NewEntity()
	w.Bullets = append(w.Bullets, entity.Bullet{ID: id, X: x, Y: y})
	return id
}

// SpawnEnemyBullet appends an enemy bullet and returns its ID
func (w *World) SpawnEnemyBullet(x, y float64) entity.EntityID {
	id := w.NewEntity()
	w.EnemyBullets = append(w.EnemyBullets, entity.EnemyBullet{ID: id, X: x, Y: y})
	return id
}

// SpawnEnemy appends an enemy and returns its ID
func (w *World) SpawnEnemy(x, y float64) entity.EntityID {
	id := w.NewEntity()
	w.Enemies = append(w.Enemies, entity.Enemy{ID: id, X: x, Y: y})
	return id
}

// SpawnPowerUp appends a power-up and returns its ID
func (w *World) SpawnPowerUp(x, y float64, kind entity.PowerUpKind) entity.EntityID {
	id := w.NewEntity()
	w.PowerUps = append(w.PowerUps, entity.PowerUp{ID: id, X: x, Y: y, Kind: kind})
	return id
}

// SpawnExplosion appends an explosion marker and returns its ID
func (w *World) SpawnExplosion(x, y float64) entity.EntityID {
	id := w.NewEntity()
	w.Explosions = append(w.Explosions, entity.Explosion{ID: id, X: x, Y: y})
	return id
}

// RemoveBullet removes the player bullet with the given ID, keeping order.
// Returns false if no such bullet exists.
func (w *World) RemoveBullet(id entity.EntityID) bool {
	for i, b := range w.Bullets {
		if b.ID == id {
			w.Bullets = append(w.Bullets[:i], w.Bullets[i+1:]...)
			return true
		}
	}
	return false
}

// AddScore adds points to the score. Negative amounts are ignored.
func (w *World) AddScore(points int) {
	if points <= 0 {
		return
	}
	w.Score += points
}

// Shielded returns true while the shield effect is active
func (w *World) Shielded() bool {
	return w.ShieldRemaining > 0
}

// DoubleShot returns true while the double-shot effect is active
func (w *World) DoubleShot() bool {
	return w.DoubleShotRemaining > 0
}

// PlayerRect returns the player's bounding box
func (w *World) PlayerRect() entity.Rect {
	return w.Player.Rect(w.Dims)
}

// MovePlayer places the player's top-left corner at (x, y) without clamping
func (w *World) MovePlayer(x, y float64) {
	w.Player.X = x
	w.Player.Y = y
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return len(w.Enemies)
}

// Validate checks the structural invariants: identifiers are unique and were
// issued by this world, and the score is non-negative.
func (w *World) Validate() error {
	if w.Score < 0 {
		return fmt.Errorf("negative score %d", w.Score)
	}

	seen := make(map[entity.EntityID]struct{})
	check := func(id entity.EntityID) error {
		if id == 0 || id >= w.nextID {
			return fmt.Errorf("entity id %d was not issued by this world", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate entity id %d", id)
		}
		seen[id] = struct{}{}
		return nil
	}

	for _, b := range w.Bullets {
		if err := check(b.ID); err != nil {
			return err
		}
	}
	for _, b := range w.EnemyBullets {
		if err := check(b.ID); err != nil {
			return err
		}
	}
	for _, e := range w.Enemies {
		if err := check(e.ID); err != nil {
			return err
		}
	}
	for _, p := range w.PowerUps {
		if err := check(p.ID); err != nil {
			return err
		}
	}
	for _, x := range w.Explosions {
		if err := check(x.ID); err != nil {
			return err
		}
	}
	return nil
}
