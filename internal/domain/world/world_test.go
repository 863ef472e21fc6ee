package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyraid/internal/domain/entity"
)

func newTestWorld() *World {
	return NewWorld(Area{Width: 400, Height: 800}, entity.DefaultDimensions(), 50)
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld()

	require.NotNil(t, w)
	assert.Equal(t, entity.EntityID(1), w.nextID)
	assert.Equal(t, entity.Player{X: 170, Y: 690}, w.Player)
	assert.Empty(t, w.Bullets)
	assert.Empty(t, w.Enemies)
	assert.Equal(t, 0, w.Score)
	assert.False(t, w.Firing)
}

func TestNewEntity(t *testing.T) {
	w := newTestWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, entity.EntityID(1), id1)
	assert.Equal(t, entity.EntityID(2), id2)
	assert.Equal(t, entity.EntityID(3), id3)
	assert.Equal(t, entity.EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := newTestWorld()

	id1 := w.SpawnBullet(10, 10)
	require.True(t, w.RemoveBullet(id1))
	w.Reset()

	id2 := w.SpawnBullet(10, 10)
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled, even across a reset")
}

func TestSpawnPreservesInsertionOrder(t *testing.T) {
	w := newTestWorld()

	a := w.SpawnEnemy(10, 0)
	b := w.SpawnEnemy(20, 0)
	c := w.SpawnEnemy(30, 0)

	require.Len(t, w.Enemies, 3)
	assert.Equal(t, []entity.EntityID{a, b, c}, []entity.EntityID{w.Enemies[0].ID, w.Enemies[1].ID, w.Enemies[2].ID})
	assert.Equal(t, 3, w.CountEnemies())
}

func TestRemoveBullet(t *testing.T) {
	w := newTestWorld()
	a := w.SpawnBullet(1, 1)
	b := w.SpawnBullet(2, 2)
	c := w.SpawnBullet(3, 3)

	assert.True(t, w.RemoveBullet(b))
	assert.False(t, w.RemoveBullet(b), "second removal should report missing bullet")

	require.Len(t, w.Bullets, 2)
	assert.Equal(t, a, w.Bullets[0].ID)
	assert.Equal(t, c, w.Bullets[1].ID)
}

func TestAddScore(t *testing.T) {
	w := newTestWorld()

	w.AddScore(10)
	w.AddScore(10)
	w.AddScore(-50)
	w.AddScore(0)

	assert.Equal(t, 20, w.Score, "score must never decrease")
}

func TestEffects(t *testing.T) {
	w := newTestWorld()
	assert.False(t, w.Shielded())
	assert.False(t, w.DoubleShot())

	w.ShieldRemaining = time.Second
	assert.True(t, w.Shielded())
	assert.False(t, w.DoubleShot(), "effects are independent")

	w.DoubleShotRemaining = time.Millisecond
	assert.True(t, w.DoubleShot())
}

func TestReset(t *testing.T) {
	w := newTestWorld()
	w.SpawnBullet(1, 1)
	w.SpawnEnemyBullet(1, 1)
	w.SpawnEnemy(1, 1)
	w.SpawnPowerUp(1, 1, entity.PowerUpShield)
	w.SpawnExplosion(1, 1)
	w.MovePlayer(0, 0)
	w.Score = 120
	w.Firing = true
	w.ShieldRemaining = time.Second
	w.DoubleShotRemaining = time.Second
	w.PlayerDown = true
	w.Emit(BulletFired{Count: 1})

	w.Reset()

	assert.Empty(t, w.Bullets)
	assert.Empty(t, w.EnemyBullets)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.PowerUps)
	assert.Empty(t, w.Explosions)
	assert.Equal(t, entity.Player{X: 170, Y: 690}, w.Player)
	assert.Equal(t, 0, w.Score)
	assert.False(t, w.Firing)
	assert.False(t, w.Shielded())
	assert.False(t, w.DoubleShot())
	assert.False(t, w.PlayerDown)
	assert.Nil(t, w.DrainEvents())
}

func TestClearMoving(t *testing.T) {
	w := newTestWorld()
	w.SpawnBullet(1, 1)
	w.SpawnEnemyBullet(1, 1)
	w.SpawnEnemy(1, 1)
	w.SpawnPowerUp(1, 1, entity.PowerUpDoubleShot)
	w.SpawnExplosion(1, 1)

	w.ClearMoving()

	assert.Empty(t, w.Bullets)
	assert.Empty(t, w.EnemyBullets)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.PowerUps)
	assert.Len(t, w.Explosions, 1, "explosions are not moving entities")
}

func TestEvents(t *testing.T) {
	w := newTestWorld()

	w.Emit(BulletFired{Count: 2})
	w.Emit(PowerUpCollected{Kind: entity.PowerUpShield})

	events := w.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, BulletFired{Count: 2}, events[0])
	assert.Equal(t, PowerUpCollected{Kind: entity.PowerUpShield}, events[1])

	assert.Nil(t, w.DrainEvents(), "queue should be empty after drain")
}

func TestValidate(t *testing.T) {
	t.Run("valid world", func(t *testing.T) {
		w := newTestWorld()
		w.SpawnBullet(1, 1)
		w.SpawnEnemy(1, 1)
		assert.NoError(t, w.Validate())
	})

	t.Run("negative score", func(t *testing.T) {
		w := newTestWorld()
		w.Score = -10
		assert.Error(t, w.Validate())
	})

	t.Run("duplicate id", func(t *testing.T) {
		w := newTestWorld()
		id := w.SpawnEnemy(1, 1)
		w.Bullets = append(w.Bullets, entity.Bullet{ID: id})
		assert.Error(t, w.Validate())
	})

	t.Run("foreign id", func(t *testing.T) {
		w := newTestWorld()
		w.Enemies = append(w.Enemies, entity.Enemy{ID: 999})
		assert.Error(t, w.Validate())
	})
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	w := newTestWorld()
	w.SpawnEnemy(10, 20)
	w.ShieldRemaining = time.Second

	snap := w.Snapshot()
	w.Enemies[0].Y = 500

	require.Len(t, snap.Enemies, 1)
	assert.Equal(t, 20.0, snap.Enemies[0].Y)
	assert.True(t, snap.Shielded)
	assert.False(t, snap.DoubleShot)
}
