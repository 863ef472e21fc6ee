// Package scene defines the screens the game loop switches between.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. The loop calls Update once per frame and
// Draw once per rendered frame; returning a non-nil Scene from Update
// replaces the current one.
type Scene interface {
	// Update advances the scene by dt of simulated time. A non-nil error
	// stops the game.
	Update(dt time.Duration) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs when the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced and on shutdown. Scenes save
	// their state here.
	OnExit()
}
