package entity

// Enemy is a descending hostile ship
type Enemy struct {
	ID   EntityID
	X, Y float64
}

// Rect returns the enemy's bounding box
func (e Enemy) Rect(d Dimensions) Rect {
	return NewRect(e.X, e.Y, d.Enemy)
}

// RectAt returns the enemy's bounding box as if it were at height y
func (e Enemy) RectAt(y float64, d Dimensions) Rect {
	return NewRect(e.X, y, d.Enemy)
}

// Muzzle returns the spawn position of a bullet fired from the enemy's bottom-center
func (e Enemy) Muzzle(d Dimensions) (x, y float64) {
	return e.X + d.Enemy.Width/2 - d.Bullet.Width/2, e.Y + d.Enemy.Height
}
