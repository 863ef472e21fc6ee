package entity

// Bullet is a projectile fired by the player; it travels upward
type Bullet struct {
	ID   EntityID
	X, Y float64
}

// Rect returns the bullet's bounding box
func (b Bullet) Rect(d Dimensions) Rect {
	return NewRect(b.X, b.Y, d.Bullet)
}

// EnemyBullet is a projectile fired by an enemy; it travels downward
type EnemyBullet struct {
	ID   EntityID
	X, Y float64
}

// Rect returns the enemy bullet's bounding box
func (b EnemyBullet) Rect(d Dimensions) Rect {
	return NewRect(b.X, b.Y, d.Bullet)
}
