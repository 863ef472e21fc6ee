package entity

// Player is the single player-controlled ship.
// X, Y is the top-left corner of its bounding box.
type Player struct {
	X, Y float64
}

// NewPlayer creates a player at the given top-left position
func NewPlayer(x, y float64) Player {
	return Player{X: x, Y: y}
}

// Rect returns the player's bounding box
func (p Player) Rect(d Dimensions) Rect {
	return NewRect(p.X, p.Y, d.Player)
}

// CenterX returns the horizontal center of the player
func (p Player) CenterX(d Dimensions) float64 {
	return p.X + d.Player.Width/2
}

// SpawnPosition returns the player's starting position: horizontally centered,
// bottomMargin above the bottom edge of the play area.
func SpawnPosition(areaW, areaH float64, d Dimensions, bottomMargin float64) (x, y float64) {
	return areaW/2 - d.Player.Width/2, areaH - d.Player.Height - bottomMargin
}
