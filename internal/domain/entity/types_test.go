package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{X: 0, Y: 0, W: 10, H: 10}, Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 0, Y: 0, W: 50, H: 50}, Rect{X: 10, Y: 10, W: 6, H: 20}, true},
		{"separate on x", Rect{X: 0, Y: 0, W: 10, H: 10}, Rect{X: 20, Y: 0, W: 10, H: 10}, false},
		{"separate on y", Rect{X: 0, Y: 0, W: 10, H: 10}, Rect{X: 0, Y: 20, W: 10, H: 10}, false},
		{"touching right edge", Rect{X: 0, Y: 0, W: 10, H: 10}, Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 0, W: 10, H: 10}, Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"bullet vs enemy scenario", Rect{X: 100, Y: 50, W: 6, H: 20}, Rect{X: 90, Y: 65, W: 50, H: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestRect_OverlapsIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		a := Rect{X: rng.Float64() * 200, Y: rng.Float64() * 200, W: 1 + rng.Float64()*60, H: 1 + rng.Float64()*60}
		b := Rect{X: rng.Float64() * 200, Y: rng.Float64() * 200, W: 1 + rng.Float64()*60, H: 1 + rng.Float64()*60}
		assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlap must be symmetric for %+v and %+v", a, b)
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, Size{Width: 6, Height: 20})

	assert.Equal(t, 16.0, r.Right())
	assert.Equal(t, 40.0, r.Bottom())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.5, Clamp(7.5, 0, 10))
}

func TestDefaultDimensions(t *testing.T) {
	d := DefaultDimensions()

	assert.Equal(t, Size{Width: 60, Height: 60}, d.Player)
	assert.Equal(t, Size{Width: 6, Height: 20}, d.Bullet)
	assert.Equal(t, Size{Width: 50, Height: 50}, d.Enemy)
	assert.Equal(t, Size{Width: 40, Height: 40}, d.PowerUp)
}

func TestEnemy_Muzzle(t *testing.T) {
	d := DefaultDimensions()
	e := Enemy{ID: 1, X: 100, Y: 40}

	x, y := e.Muzzle(d)
	assert.Equal(t, 122.0, x) // 100 + 25 - 3
	assert.Equal(t, 90.0, y)  // 40 + 50
}

func TestEnemy_RectAt(t *testing.T) {
	d := DefaultDimensions()
	e := Enemy{ID: 1, X: 90, Y: 60}

	r := e.RectAt(65, d)
	assert.Equal(t, Rect{X: 90, Y: 65, W: 50, H: 50}, r)
	assert.Equal(t, 60.0, e.Y, "RectAt must not move the enemy")
}

func TestPlayer_SpawnPositionAndCenter(t *testing.T) {
	d := DefaultDimensions()

	x, y := SpawnPosition(400, 800, d, 50)
	assert.Equal(t, 170.0, x)
	assert.Equal(t, 690.0, y)

	p := NewPlayer(x, y)
	assert.Equal(t, 200.0, p.CenterX(d))
	assert.Equal(t, Rect{X: 170, Y: 690, W: 60, H: 60}, p.Rect(d))
}

func TestPowerUpKind_String(t *testing.T) {
	tests := []struct {
		kind     PowerUpKind
		expected string
	}{
		{PowerUpShield, "Shield"},
		{PowerUpDoubleShot, "DoubleShot"},
		{PowerUpKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
