package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/skyraid/internal/domain/world"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Sound identifies a one-shot effect
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundPowerUp
)

// String returns the string representation of the sound
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "Shoot"
	case SoundExplosion:
		return "Explosion"
	case SoundPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// SoundFor maps a simulation event to its sound effect
func SoundFor(ev world.Event) (Sound, bool) {
	switch ev.(type) {
	case world.BulletFired:
		return SoundShoot, true
	case world.EnemyDestroyed, world.GameOver:
		return SoundExplosion, true
	case world.PowerUpCollected:
		return SoundPowerUp, true
	default:
		return 0, false
	}
}

// SoundManager plays effects and background music on the speaker goroutine.
// Every method is safe to call when the speaker could not be initialized.
type SoundManager struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	music        *beep.Ctrl
	initialized  bool
	soundEnabled bool
	musicEnabled bool
	logger       *log.Logger
}

// NewSoundManager creates a sound manager with both channels enabled
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:        &beep.Mixer{},
		soundEnabled: true,
		musicEnabled: true,
		logger:       logger,
	}
}

// Initialize sets up the speaker. On failure the manager stays silent and
// the error is returned for the caller to log.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = true
		speaker.Unlock()
		sm.music = nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetSoundEnabled toggles effects
func (sm *SoundManager) SetSoundEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.soundEnabled = enabled
}

// SetMusicEnabled toggles the music loop, starting or pausing it
func (sm *SoundManager) SetMusicEnabled(enabled bool) {
	sm.mu.Lock()
	sm.musicEnabled = enabled
	sm.mu.Unlock()

	if enabled {
		sm.StartMusic()
	} else {
		sm.StopMusic()
	}
}

// HandleEvents plays the sounds for a batch of simulation events
func (sm *SoundManager) HandleEvents(events []world.Event) {
	for _, s := range sm.soundsFor(events) {
		sm.Play(s)
	}
}

// soundsFor returns the effects to play, honoring the sound setting
func (sm *SoundManager) soundsFor(events []world.Event) []Sound {
	sm.mu.Lock()
	enabled := sm.soundEnabled
	sm.mu.Unlock()
	if !enabled {
		return nil
	}

	var out []Sound
	for _, ev := range events {
		if s, ok := SoundFor(ev); ok {
			out = append(out, s)
		}
	}
	return out
}

// Play queues a one-shot effect
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.soundEnabled {
		return
	}

	var streamer beep.Streamer
	switch s {
	case SoundShoot:
		streamer = beep.Take(sampleRate.N(time.Millisecond*90), NewLaserGenerator(sampleRate))
	case SoundExplosion:
		streamer = beep.Take(sampleRate.N(time.Millisecond*400), NewExplosionGenerator(sampleRate))
	case SoundPowerUp:
		streamer = beep.Take(sampleRate.N(time.Millisecond*250), NewChimeGenerator(sampleRate))
	default:
		sm.logger.Warn("unknown sound", "sound", s)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartMusic starts the background loop if music is enabled
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.musicEnabled {
		return
	}

	// Already playing
	if sm.music != nil && !sm.music.Paused {
		return
	}

	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = false
		speaker.Unlock()
		return
	}

	// the generator never ends, so no loop wrapper is needed
	ctrl := &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate), Paused: false}
	sm.music = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses the background loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}
