package entity

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Size is the width and height of an entity's bounding box
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned bounding box with a top-left origin
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect at (x, y) with the given size
func NewRect(x, y float64, s Size) Rect {
	return Rect{X: x, Y: y, W: s.Width, H: s.Height}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether both the x and y intervals of r and o intersect.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Dimensions holds the bounding box sizes of every entity kind
type Dimensions struct {
	Player  Size
	Bullet  Size // shared by player and enemy bullets
	Enemy   Size
	PowerUp Size
}

// DefaultDimensions returns the standard entity sizes
func DefaultDimensions() Dimensions {
	return Dimensions{
		Player:  Size{Width: 60, Height: 60},
		Bullet:  Size{Width: 6, Height: 20},
		Enemy:   Size{Width: 50, Height: 50},
		PowerUp: Size{Width: 40, Height: 40},
	}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
