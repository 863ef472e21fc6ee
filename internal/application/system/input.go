package system

import (
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/domain/world"
)

// InputSystem maps pointer input onto the player and the firing latch.
// Pointer coordinates are the intended center of the player.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the pointer state sampled for one frame
type InputState struct {
	PointerX float64
	PointerY float64
	Pressed  bool // pointer went down this frame
	Released bool // pointer went up this frame
	Moved    bool // pointer is held and its position changed
}

// Intents converts a sampled frame into intents, in press, move, release order
func (in InputState) Intents() []Intent {
	var out []Intent
	if in.Pressed {
		out = append(out, PressIntent{X: in.PointerX, Y: in.PointerY})
	}
	if in.Moved && !in.Pressed {
		out = append(out, MoveIntent{X: in.PointerX, Y: in.PointerY})
	}
	if in.Released {
		out = append(out, ReleaseIntent{})
	}
	return out
}

// Apply applies one intent to the world
func (s *InputSystem) Apply(w *world.World, intent Intent) {
	switch in := intent.(type) {
	case PressIntent:
		s.placePlayer(w, in.X, in.Y)
		w.Firing = true
	case MoveIntent:
		s.placePlayer(w, in.X, in.Y)
	case ReleaseIntent:
		w.Firing = false
	}
}

// placePlayer centers the player on the pointer, clamped to the area
func (s *InputSystem) placePlayer(w *world.World, px, py float64) {
	size := w.Dims.Player
	x := entity.Clamp(px-size.Width/2, 0, w.Area.Width-size.Width)
	y := entity.Clamp(py-size.Height/2, 0, w.Area.Height-size.Height)
	w.MovePlayer(x, y)
}
