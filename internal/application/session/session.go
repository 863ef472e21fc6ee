// Package session drives a play session: the state machine, the cadence
// scheduler that dispatches every tick processor, and the persistence boundary.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

// ErrInvalidTransition is returned when an action is not allowed in the current state
var ErrInvalidTransition = errors.New("session: invalid state transition")

// Session owns the world and advances it. Not safe for concurrent use:
// hosts call every method from their update goroutine.
type Session struct {
	config *config.TuningConfig
	store  storage.Store
	logger *log.Logger

	world    *world.World
	state    state.GameState
	settings Settings

	input   *system.InputSystem
	spawn   *system.SpawnSystem
	motion  *system.MotionSystem
	combat  *system.CombatSystem
	effects *system.EffectSystem

	tick         cadence
	powerUpStep  cadence
	fire         cadence
	enemySpawn   cadence
	enemyFire    cadence
	powerUpSpawn cadence
	explosionAge cadence
}

// New creates a session in the Loading state. A nil logger uses log.Default().
func New(cfg *config.TuningConfig, store storage.Store, rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}

	w := world.NewWorld(
		world.Area{Width: cfg.Area.Width, Height: cfg.Area.Height},
		cfg.Sizes.Dimensions(),
		cfg.Player.SpawnBottomMargin,
	)

	s := &Session{
		config:   cfg,
		store:    store,
		logger:   logger,
		world:    w,
		state:    state.StateLoading,
		settings: DefaultSettings(),
		input:    system.NewInputSystem(),
		spawn:    system.NewSpawnSystem(cfg, rng, logger),
		motion:   system.NewMotionSystem(cfg),
		combat:   system.NewCombatSystem(cfg),
		effects:  system.NewEffectSystem(),
	}
	s.resetCadences()
	return s
}

func (s *Session) resetCadences() {
	t := s.config.Timing
	s.tick = newCadence(t.Tick())
	s.powerUpStep = newCadence(t.PowerUpStep())
	s.fire = newCadence(t.Fire())
	s.enemySpawn = newCadence(t.EnemySpawn())
	s.enemyFire = newCadence(t.EnemyFire())
	s.powerUpSpawn = newCadence(t.PowerUpSpawn())
	s.explosionAge = newCadence(t.ExplosionAge())
}

// Start loads the saved session and settings and enters Active.
// A saved paused session restores its score; anything else starts fresh.
func (s *Session) Start() error {
	if s.state != state.StateLoading {
		return fmt.Errorf("start from %s: %w", s.state, ErrInvalidTransition)
	}

	s.settings = LoadSettings(s.store, s.logger)
	s.world.Reset()
	s.world.Score = s.loadSavedScore()
	s.resetCadences()

	s.transition(state.StateActive)
	return nil
}

func (s *Session) loadSavedScore() int {
	paused, err := s.store.Get(storage.KeyPaused)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("store read failed, starting fresh", "key", storage.KeyPaused, "err", err)
		}
		return 0
	}
	if paused != "true" {
		return 0
	}

	raw, err := s.store.Get(storage.KeySavedScore)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("store read failed, starting fresh", "key", storage.KeySavedScore, "err", err)
		}
		return 0
	}
	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		s.logger.Warn("malformed saved score, starting fresh", "value", raw)
		return 0
	}

	s.logger.Info("resuming saved session", "score", score)
	return score
}

// Advance runs the simulation forward by dt and returns the events it produced.
// dt is split into steps no longer than one tick so motion and collision
// never skip a tick. Nothing advances unless the session is Active, except
// explosion aging which keeps running on the game-over screen.
func (s *Session) Advance(dt time.Duration) []world.Event {
	if dt > 0 {
		switch s.state {
		case state.StateActive:
			s.simulate(dt)
		case state.StateGameOver:
			for range s.explosionAge.advance(dt) {
				s.effects.AgeExplosions(s.world)
			}
		}
	}

	if s.config.Debug {
		if err := s.world.Validate(); err != nil {
			s.logger.Fatal("world invariant violated", "err", err)
		}
	}

	return s.world.DrainEvents()
}

func (s *Session) simulate(dt time.Duration) {
	tick := s.config.Timing.Tick()
	for dt > 0 && s.state == state.StateActive {
		step := min(dt, tick)
		dt -= step
		s.step(step)
	}
}

// step dispatches every processor whose cadence completed within dt
func (s *Session) step(dt time.Duration) {
	w := s.world

	s.effects.Countdown(w, dt)

	for range s.fire.advance(dt) {
		s.spawn.FirePlayer(w)
	}
	for range s.enemySpawn.advance(dt) {
		s.spawn.SpawnEnemy(w)
	}
	for range s.enemyFire.advance(dt) {
		s.spawn.EnemyFire(w)
	}
	for range s.powerUpSpawn.advance(dt) {
		s.spawn.MaybeSpawnPowerUp(w)
	}

	for range s.tick.advance(dt) {
		s.motion.Tick(w)
		s.combat.ResolveTick(w)
		if w.PlayerDown {
			s.gameOver()
			return
		}
	}

	for range s.powerUpStep.advance(dt) {
		s.motion.StepPowerUps(w)
		s.combat.CollectPowerUps(w)
	}
	for range s.explosionAge.advance(dt) {
		s.effects.AgeExplosions(w)
	}
}

func (s *Session) gameOver() {
	w := s.world
	w.ClearMoving()
	w.Firing = false
	s.transition(state.StateGameOver)
	w.Emit(world.GameOver{Score: w.Score})
	s.logger.Info("game over", "score", w.Score)
}

// Apply delivers a pointer intent. Input is ignored unless the session is Active.
func (s *Session) Apply(intent system.Intent) {
	if !s.state.Simulating() {
		return
	}
	wasFiring := s.world.Firing
	s.input.Apply(s.world, intent)
	if s.world.Firing && !wasFiring {
		// first shot lands one full fire interval after the press
		s.fire.reset()
	}
}

// HandleInput delivers every intent of a sampled frame
func (s *Session) HandleInput(in system.InputState) {
	for _, intent := range in.Intents() {
		s.Apply(intent)
	}
}

// PointerDown moves the player under the pointer and starts firing
func (s *Session) PointerDown(x, y float64) {
	s.Apply(system.PressIntent{X: x, Y: y})
}

// PointerMove moves the player under the pointer
func (s *Session) PointerMove(x, y float64) {
	s.Apply(system.MoveIntent{X: x, Y: y})
}

// PointerUp stops firing
func (s *Session) PointerUp() {
	s.Apply(system.ReleaseIntent{})
}

// Pause freezes every cadence and saves the score for a later session
func (s *Session) Pause() error {
	if s.state != state.StateActive {
		return fmt.Errorf("pause from %s: %w", s.state, ErrInvalidTransition)
	}
	s.world.Firing = false
	s.transition(state.StatePaused)
	s.saveSession()
	return nil
}

// Resume continues a paused session and forgets the saved pause
func (s *Session) Resume() error {
	if s.state != state.StatePaused {
		return fmt.Errorf("resume from %s: %w", s.state, ErrInvalidTransition)
	}
	s.remove(storage.KeyPaused)
	s.transition(state.StateActive)
	return nil
}

// Restart discards the saved session and starts over with score 0
func (s *Session) Restart() error {
	if s.state == state.StateLoading {
		return fmt.Errorf("restart from %s: %w", s.state, ErrInvalidTransition)
	}
	s.remove(storage.KeyPaused)
	s.remove(storage.KeySavedScore)
	s.world.Reset()
	s.resetCadences()
	s.transition(state.StateActive)
	return nil
}

// Close saves a running or paused session so the next Start resumes its score
func (s *Session) Close() {
	switch s.state {
	case state.StateActive, state.StatePaused:
		s.saveSession()
	}
}

func (s *Session) saveSession() {
	s.persist(storage.KeyPaused, "true")
	s.persist(storage.KeySavedScore, strconv.Itoa(s.world.Score))
}

// SetSoundEnabled persists the sound effects preference
func (s *Session) SetSoundEnabled(enabled bool) {
	s.settings.SoundEnabled = enabled
	s.persist(storage.KeySoundEnabled, strconv.FormatBool(enabled))
}

// SetMusicEnabled persists the music preference
func (s *Session) SetMusicEnabled(enabled bool) {
	s.settings.MusicEnabled = enabled
	s.persist(storage.KeyMusicEnabled, strconv.FormatBool(enabled))
}

func (s *Session) persist(key, value string) {
	if err := s.store.Set(key, value); err != nil {
		s.logger.Warn("store write failed", "key", key, "err", err)
	}
}

func (s *Session) remove(key string) {
	if err := s.store.Remove(key); err != nil {
		s.logger.Warn("store remove failed", "key", key, "err", err)
	}
}

func (s *Session) transition(next state.GameState) {
	if !s.state.CanTransition(next) {
		s.logger.Error("unexpected transition", "from", s.state, "to", next)
	}
	s.logger.Info("session state", "from", s.state, "to", next)
	s.state = next
}

// State returns the current session state
func (s *Session) State() state.GameState {
	return s.state
}

// Score returns the current score
func (s *Session) Score() int {
	return s.world.Score
}

// Settings returns the audio preferences
func (s *Session) Settings() Settings {
	return s.settings
}

// Snapshot returns a copy of the world for drawing
func (s *Session) Snapshot() world.Snapshot {
	return s.world.Snapshot()
}
