// Command termgame plays the game in a terminal with mouse input.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/skyraid/internal/application/session"
	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/domain/entity"
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/audio"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

const frameTime = 16 * time.Millisecond

var (
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleShield      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Reverse(true)
	styleBullet      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEnemyBullet = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	stylePowerUp     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleExplosion   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleText        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Term maps terminal cells onto the play area
type Term struct {
	screen  tcell.Screen
	session *session.Session
	sound   *audio.SoundManager
	logger  *log.Logger

	cols, rows int
	held       bool
}

func main() {
	logger, closeLog := newLogger()
	defer closeLog()

	if err := run(logger); err != nil {
		logger.Error("termgame stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := loadTuning()
	if err != nil {
		return err
	}

	store := storage.NewAsyncStore(openStore(logger), logger)
	defer store.Close()

	sound := audio.NewSoundManager(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
	}
	defer sound.Cleanup()

	seed := config.GetEnvInt64(config.EnvSeed, time.Now().UnixNano())
	sess := session.New(cfg, store, rand.New(rand.NewSource(seed)), logger)
	if err := sess.Start(); err != nil {
		return err
	}
	defer sess.Close()

	settings := sess.Settings()
	sound.SetSoundEnabled(settings.SoundEnabled)
	sound.SetMusicEnabled(settings.MusicEnabled)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &Term{screen: screen, session: sess, sound: sound, logger: logger}
	t.cols, t.rows = screen.Size()

	events := make(chan tcell.Event, 100)
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		// PollEvent returns nil once the screen is finalized
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		return t.loop(ctx, events)
	})

	return g.Wait()
}

// loop runs the simulation at a fixed rate until the player quits
func (t *Term) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := t.handleEvent(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			t.sound.HandleEvents(t.session.Advance(now.Sub(last)))
			last = now
			t.draw()
		}
	}
}

// handleEvent applies one terminal event. It reports whether to quit.
func (t *Term) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'q':
			return true
		case 'p':
			t.togglePause()
		case 'r':
			if err := t.session.Restart(); err != nil {
				t.logger.Debug("restart ignored", "state", t.session.State())
			}
		}
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.cols, t.rows = ev.Size()
		t.screen.Sync()
	}
	return false
}

func (t *Term) togglePause() {
	switch t.session.State() {
	case state.StateActive:
		if err := t.session.Pause(); err == nil {
			t.sound.StopMusic()
		}
	case state.StatePaused:
		if err := t.session.Resume(); err == nil {
			t.sound.StartMusic()
		}
	}
}

func (t *Term) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := t.toArea(cx, cy)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.held:
		t.held = true
		if t.session.State() == state.StateGameOver {
			_ = t.session.Restart()
			return
		}
		t.session.PointerDown(x, y)
	case down:
		t.session.PointerMove(x, y)
	case t.held:
		t.held = false
		t.session.PointerUp()
	}
}

// toArea converts a cell to the play area coordinate at its center
func (t *Term) toArea(cx, cy int) (float64, float64) {
	area := t.session.Snapshot().Area
	rows := t.rows - 1 // status line
	if t.cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return (float64(cx) + 0.5) * area.Width / float64(t.cols),
		(float64(cy) + 0.5) * area.Height / float64(rows)
}

// toCell converts a play area coordinate to a cell
func (t *Term) toCell(area world.Area, x, y float64) (int, int) {
	rows := t.rows - 1
	return int(x * float64(t.cols) / area.Width), int(y * float64(rows) / area.Height)
}

func (t *Term) fill(area world.Area, x, y, w, h float64, r rune, style tcell.Style) {
	x0, y0 := t.toCell(area, x, y)
	x1, y1 := t.toCell(area, x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for cy := y0; cy < y1 && cy < t.rows-1; cy++ {
		for cx := x0; cx < x1 && cx < t.cols; cx++ {
			t.screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func (t *Term) draw() {
	t.screen.Clear()

	snap := t.session.Snapshot()
	d := snap.Dims
	area := snap.Area

	for _, x := range snap.Explosions {
		t.fill(area, x.X, x.Y, d.Enemy.Width, d.Enemy.Height, '*', styleExplosion)
	}
	for _, pu := range snap.PowerUps {
		r := 'S'
		if pu.Kind == entity.PowerUpDoubleShot {
			r = 'D'
		}
		t.fill(area, pu.X, pu.Y, d.PowerUp.Width, d.PowerUp.Height, r, stylePowerUp)
	}
	for _, e := range snap.Enemies {
		t.fill(area, e.X, e.Y, d.Enemy.Width, d.Enemy.Height, 'V', styleEnemy)
	}
	for _, b := range snap.EnemyBullets {
		t.fill(area, b.X, b.Y, d.Bullet.Width, d.Bullet.Height, '!', styleEnemyBullet)
	}
	for _, b := range snap.Bullets {
		t.fill(area, b.X, b.Y, d.Bullet.Width, d.Bullet.Height, '|', styleBullet)
	}

	st := t.session.State()
	if st != state.StateGameOver {
		style := stylePlayer
		if snap.Shielded {
			style = styleShield
		}
		t.fill(area, snap.Player.X, snap.Player.Y, d.Player.Width, d.Player.Height, 'A', style)
	}

	status := fmt.Sprintf("score %d", snap.Score)
	if snap.Shielded {
		status += " SHIELD"
	}
	if snap.DoubleShot {
		status += " DOUBLE"
	}
	switch st {
	case state.StatePaused:
		status += "  PAUSED (p resume, r restart)"
	case state.StateGameOver:
		status += "  GAME OVER (click or r to restart)"
	default:
		status += "  (p pause, q quit)"
	}
	t.drawText(0, t.rows-1, status)

	t.screen.Show()
}

func (t *Term) drawText(x, y int, s string) {
	for i, r := range s {
		if x+i >= t.cols {
			return
		}
		t.screen.SetContent(x+i, y, r, nil, styleText)
	}
}

// newLogger writes to a file since the terminal belongs to the screen
func newLogger() (*log.Logger, func()) {
	lvl := config.GetEnv(config.EnvLogLevel, "")
	if lvl == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(filepath.Join(os.TempDir(), "skyraid-term.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "termgame"})
	if level, err := log.ParseLevel(lvl); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }
}

func loadTuning() (*config.TuningConfig, error) {
	if dir := config.GetEnv(config.EnvConfigDir, ""); dir != "" {
		return config.NewLoader(dir).LoadTuning()
	}
	cfg := config.Default()
	return &cfg, nil
}

func openStore(logger *log.Logger) storage.Store {
	path := config.GetEnv(config.EnvSaveFile, "")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return storage.NewMemoryStore()
		}
		path = filepath.Join(dir, "skyraid", "save.json")
	}
	fileStore, err := storage.OpenFileStore(path)
	if err != nil {
		logger.Warn("save file unavailable, progress will not persist", "path", path, "err", err)
		return storage.NewMemoryStore()
	}
	return fileStore
}
