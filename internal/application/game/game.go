// Package game adapts a stack of scenes to ebiten's Game interface.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyraid/internal/application/scene"
)

// DefaultTPS is the update rate the game runs at
const DefaultTPS = 60

// StatsKey toggles the TPS/FPS readout
const StatsKey = ebiten.KeyF3

// FrameDuration returns the simulated time of one update at the given rate,
// truncated to whole microseconds so recordings replay exactly.
func FrameDuration(tps int) time.Duration {
	return time.Duration(1_000_000/tps) * time.Microsecond
}

// Game runs the current scene and swaps scenes on request
type Game struct {
	current scene.Scene
	width   int
	height  int
	dt      time.Duration

	showStats bool
	closed    bool
}

// New enters initial and returns a game whose logical screen is width x height
func New(initial scene.Scene, width, height int) *Game {
	g := &Game{
		current: initial,
		width:   width,
		height:  height,
		dt:      FrameDuration(DefaultTPS),
	}
	initial.OnEnter()
	return g
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(StatsKey) {
		g.showStats = !g.showStats
	}
	return g.step()
}

// step advances the current scene by one frame
func (g *Game) step() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	next.OnEnter()
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
	if g.showStats {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 0, g.height-36)
	}
}

// Layout implements ebiten.Game. The logical size is fixed; ebiten scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// SetDT overrides the simulated time passed to each scene update
func (g *Game) SetDT(dt time.Duration) { g.dt = dt }

// DT returns the simulated time of one update
func (g *Game) DT() time.Duration { return g.dt }

// Close exits the current scene. Call it once ebiten.RunGame returns;
// later calls do nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
