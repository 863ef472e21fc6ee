// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyraid/internal/application/scene"
	"github.com/younwookim/skyraid/internal/application/session"
	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/domain/world"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{10, 12, 30, 255}
	colorPlayer      = color.RGBA{100, 200, 255, 255}
	colorShield      = color.RGBA{120, 220, 255, 80}
	colorBullet      = color.RGBA{255, 240, 120, 255}
	colorEnemy       = color.RGBA{220, 80, 80, 255}
	colorEnemyBullet = color.RGBA{255, 100, 200, 255}
	colorShieldItem  = color.RGBA{80, 160, 255, 255}
	colorDoubleItem  = color.RGBA{120, 255, 120, 255}
	colorExplosion   = color.RGBA{255, 160, 40, 200}
	colorOverlay     = color.RGBA{0, 0, 0, 160}
)

// Sound receives simulation events and audio preference changes
type Sound interface {
	HandleEvents(events []world.Event)
	SetSoundEnabled(enabled bool)
	SetMusicEnabled(enabled bool)
	StartMusic()
	StopMusic()
}

// keyInput holds the key presses the scene reacts to in one frame
type keyInput struct {
	pause       bool // P or Escape
	restart     bool // R
	toggleSound bool // S
	toggleMusic bool // M
	save        bool // F5
}

// Playing is the main gameplay scene
type Playing struct {
	session *session.Session
	sound   Sound
	logger  *log.Logger

	// Pointer tracking
	lastX, lastY float64
	touchIDs     []ebiten.TouchID
	activeTouch  ebiten.TouchID
	touching     bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene around a session in the Loading state.
func New(sess *session.Session, sound Sound, logger *log.Logger) *Playing {
	if logger == nil {
		logger = log.Default()
	}

	return &Playing{
		session: sess,
		sound:   sound,
		logger:  logger,
	}
}

// EnableRecording records the first run's input to filename. seed must be
// the seed the session's RNG was created with. An empty filename picks a
// timestamped name on save.
func (p *Playing) EnableRecording(filename string, seed int64, frame time.Duration) {
	p.recorder = NewRecorder(seed, frame)
	p.recordFilename = filename
	p.logger.Info("recording enabled", "file", filename, "seed", seed)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt time.Duration) (scene.Scene, error) {
	p.step(p.readInput(), p.readKeys(), dt)
	return nil, nil // nil = stay on this scene
}

// step applies one frame of input and advances the session
func (p *Playing) step(input system.InputState, keys keyInput, dt time.Duration) {
	p.applySettings(keys)

	// F5: Save recording manually
	if keys.save && p.recorder != nil {
		p.saveRecording()
	}

	switch p.session.State() {
	case state.StateActive:
		if keys.pause {
			if err := p.session.Pause(); err != nil {
				p.logger.Error("pause failed", "err", err)
			}
			p.sound.StopMusic()
			return
		}
		p.updateActive(input, dt)
	case state.StatePaused:
		if keys.pause {
			if err := p.session.Resume(); err != nil {
				p.logger.Error("resume failed", "err", err)
			}
			p.sound.StartMusic()
		} else if keys.restart {
			p.restart()
		}
	case state.StateGameOver:
		// explosions keep fading behind the overlay
		p.sound.HandleEvents(p.session.Advance(dt))
		if input.Pressed || keys.restart {
			p.restart()
		}
	}
}

func (p *Playing) updateActive(input system.InputState, dt time.Duration) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.HandleInput(input)
	events := p.session.Advance(dt)
	p.sound.HandleEvents(events)

	for _, ev := range events {
		if over, ok := ev.(world.GameOver); ok {
			p.logger.Info("run finished", "score", over.Score)
			// Auto-save recording on game over
			if p.recorder != nil && p.recorder.IsRecording() {
				p.saveRecording()
				p.recorder.Stop()
			}
		}
	}
}

func (p *Playing) applySettings(keys keyInput) {
	settings := p.session.Settings()
	if keys.toggleSound {
		p.session.SetSoundEnabled(!settings.SoundEnabled)
		p.sound.SetSoundEnabled(!settings.SoundEnabled)
	}
	if keys.toggleMusic {
		p.session.SetMusicEnabled(!settings.MusicEnabled)
		p.sound.SetMusicEnabled(!settings.MusicEnabled)
	}
}

func (p *Playing) restart() {
	if err := p.session.Restart(); err != nil {
		p.logger.Error("restart failed", "err", err)
		return
	}
	// A recording only covers one run from the seed
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
	p.sound.StartMusic()
}

// readInput samples mouse and touch. Screen coordinates equal world
// coordinates because Layout returns the play area size.
func (p *Playing) readInput() system.InputState {
	var in system.InputState

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	switch {
	case len(p.touchIDs) > 0 && !p.touching:
		p.activeTouch = p.touchIDs[0]
		p.touching = true
		x, y := ebiten.TouchPosition(p.activeTouch)
		in.PointerX, in.PointerY = float64(x), float64(y)
		in.Pressed = true
	case p.touching:
		if inpututil.IsTouchJustReleased(p.activeTouch) {
			p.touching = false
			in.PointerX, in.PointerY = p.lastX, p.lastY
			in.Released = true
		} else {
			x, y := ebiten.TouchPosition(p.activeTouch)
			in.PointerX, in.PointerY = float64(x), float64(y)
			in.Moved = in.PointerX != p.lastX || in.PointerY != p.lastY
		}
	default:
		x, y := ebiten.CursorPosition()
		in.PointerX, in.PointerY = float64(x), float64(y)
		in.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		in.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.Moved = held && (in.PointerX != p.lastX || in.PointerY != p.lastY)
	}

	p.lastX, p.lastY = in.PointerX, in.PointerY
	return in
}

func (p *Playing) readKeys() keyInput {
	return keyInput{
		pause:       inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		toggleSound: inpututil.IsKeyJustPressed(ebiten.KeyS),
		toggleMusic: inpututil.IsKeyJustPressed(ebiten.KeyM),
		save:        inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.session.Snapshot()
	d := snap.Dims

	for _, x := range snap.Explosions {
		ebitenutil.DrawRect(screen, x.X, x.Y, d.Enemy.Width, d.Enemy.Height, colorExplosion)
	}
	for _, pu := range snap.PowerUps {
		c := colorShieldItem
		if pu.Kind == entity.PowerUpDoubleShot {
			c = colorDoubleItem
		}
		ebitenutil.DrawRect(screen, pu.X, pu.Y, d.PowerUp.Width, d.PowerUp.Height, c)
	}
	for _, e := range snap.Enemies {
		ebitenutil.DrawRect(screen, e.X, e.Y, d.Enemy.Width, d.Enemy.Height, colorEnemy)
	}
	for _, b := range snap.EnemyBullets {
		ebitenutil.DrawRect(screen, b.X, b.Y, d.Bullet.Width, d.Bullet.Height, colorEnemyBullet)
	}
	for _, b := range snap.Bullets {
		ebitenutil.DrawRect(screen, b.X, b.Y, d.Bullet.Width, d.Bullet.Height, colorBullet)
	}

	p.drawPlayer(screen, snap)
	p.drawUI(screen, snap)

	switch p.session.State() {
	case state.StatePaused:
		p.drawOverlay(screen, snap, "PAUSED\n\nP to resume\nR to restart")
	case state.StateGameOver:
		p.drawOverlay(screen, snap, fmt.Sprintf("GAME OVER\n\nScore: %d\n\nClick to restart", snap.Score))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, snap world.Snapshot) {
	if p.session.State() == state.StateGameOver {
		return
	}
	size := snap.Dims.Player
	if snap.Shielded {
		ebitenutil.DrawRect(screen, snap.Player.X-6, snap.Player.Y-6, size.Width+12, size.Height+12, colorShield)
	}
	ebitenutil.DrawRect(screen, snap.Player.X, snap.Player.Y, size.Width, size.Height, colorPlayer)
}

func (p *Playing) drawUI(screen *ebiten.Image, snap world.Snapshot) {
	text := fmt.Sprintf("Score: %d", snap.Score)
	if snap.Shielded {
		text += "  SHIELD"
	}
	if snap.DoubleShot {
		text += "  DOUBLE"
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)

	settings := p.session.Settings()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[S]ound %s  [M]usic %s", onOff(settings.SoundEnabled), onOff(settings.MusicEnabled)), 10, int(snap.Area.Height)-20)

	if p.recorder != nil && p.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), int(snap.Area.Width)-70, 10)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, snap world.Snapshot, text string) {
	ebitenutil.DrawRect(screen, 0, 0, snap.Area.Width, snap.Area.Height, colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, int(snap.Area.Width)/2-50, int(snap.Area.Height)/2-40)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// OnEnter starts the session and the music
func (p *Playing) OnEnter() {
	if p.session.State() == state.StateLoading {
		if err := p.session.Start(); err != nil {
			p.logger.Error("session start failed", "err", err)
		}
	}

	settings := p.session.Settings()
	p.sound.SetSoundEnabled(settings.SoundEnabled)
	p.sound.SetMusicEnabled(settings.MusicEnabled)
}

// OnExit saves the session and any recording in progress
func (p *Playing) OnExit() {
	p.session.Close()
	p.sound.StopMusic()
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}
