package entity

// PowerUpKind identifies the effect granted by a power-up
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpDoubleShot
)

// String returns the string representation of the power-up kind
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "Shield"
	case PowerUpDoubleShot:
		return "DoubleShot"
	default:
		return "Unknown"
	}
}

// PowerUp is a falling pickup that grants a timed effect
type PowerUp struct {
	ID   EntityID
	X, Y float64
	Kind PowerUpKind
}

// Rect returns the power-up's bounding box
func (p PowerUp) Rect(d Dimensions) Rect {
	return NewRect(p.X, p.Y, d.PowerUp)
}

// Explosion is a purely visual marker left where an enemy was destroyed
type Explosion struct {
	ID   EntityID
	X, Y float64
}
