package playing

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/application/scene"
	"github.com/younwookim/skyraid/internal/application/session"
	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/application/system"
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

const frame = 16 * time.Millisecond

// fakeSound records what the scene asks of the audio layer
type fakeSound struct {
	events       []world.Event
	soundEnabled bool
	musicEnabled bool
	musicStarts  int
	musicStops   int
}

func (f *fakeSound) HandleEvents(events []world.Event) { f.events = append(f.events, events...) }
func (f *fakeSound) SetSoundEnabled(enabled bool)      { f.soundEnabled = enabled }
func (f *fakeSound) SetMusicEnabled(enabled bool)      { f.musicEnabled = enabled }
func (f *fakeSound) StartMusic()                       { f.musicStarts++ }
func (f *fakeSound) StopMusic()                        { f.musicStops++ }

func newTestScene(t *testing.T, store storage.Store) (*Playing, *fakeSound) {
	t.Helper()
	cfg := config.Default()
	logger := log.New(io.Discard)
	sess := session.New(&cfg, store, rand.New(rand.NewSource(12345)), logger)
	sound := &fakeSound{}
	p := New(sess, sound, logger)
	p.OnEnter()
	return p, sound
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestPlaying_OnEnter(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyMusicEnabled, "false"))

	p, sound := newTestScene(t, store)

	assert.Equal(t, state.StateActive, p.session.State())
	assert.True(t, sound.soundEnabled)
	assert.False(t, sound.musicEnabled, "stored preference applied to audio")
}

func TestPlaying_StepForwardsEvents(t *testing.T) {
	p, sound := newTestScene(t, storage.NewMemoryStore())

	p.step(system.InputState{PointerX: 200, PointerY: 400, Pressed: true}, keyInput{}, frame)
	for i := 0; i < 20; i++ {
		p.step(system.InputState{PointerX: 200, PointerY: 400}, keyInput{}, frame)
	}

	var fired int
	for _, ev := range sound.events {
		if _, ok := ev.(world.BulletFired); ok {
			fired++
		}
	}
	assert.Equal(t, 1, fired, "one shot after the fire interval")
	assert.Len(t, p.session.Snapshot().Bullets, 1)
}

func TestPlaying_PauseAndResume(t *testing.T) {
	p, sound := newTestScene(t, storage.NewMemoryStore())

	p.step(system.InputState{}, keyInput{pause: true}, frame)
	assert.Equal(t, state.StatePaused, p.session.State())
	assert.Equal(t, 1, sound.musicStops)

	// input is ignored while paused
	p.step(system.InputState{PointerX: 10, PointerY: 10, Pressed: true}, keyInput{}, frame)
	assert.Equal(t, state.StatePaused, p.session.State())

	p.step(system.InputState{}, keyInput{pause: true}, frame)
	assert.Equal(t, state.StateActive, p.session.State())
	assert.Equal(t, 1, sound.musicStarts)
}

func TestPlaying_RestartFromPause(t *testing.T) {
	store := storage.NewMemoryStore()
	p, sound := newTestScene(t, store)

	p.step(system.InputState{}, keyInput{pause: true}, frame)
	_, err := store.Get(storage.KeyPaused)
	require.NoError(t, err)

	p.step(system.InputState{}, keyInput{restart: true}, frame)

	assert.Equal(t, state.StateActive, p.session.State())
	assert.Equal(t, 0, p.session.Score())
	assert.Equal(t, 1, sound.musicStarts)
	_, err = store.Get(storage.KeyPaused)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPlaying_ToggleSettings(t *testing.T) {
	tests := []struct {
		name      string
		keys      keyInput
		wantSound bool
		wantMusic bool
		key       string
	}{
		{"sound", keyInput{toggleSound: true}, false, true, storage.KeySoundEnabled},
		{"music", keyInput{toggleMusic: true}, true, false, storage.KeyMusicEnabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			p, sound := newTestScene(t, store)

			p.step(system.InputState{}, tt.keys, frame)

			assert.Equal(t, tt.wantSound, sound.soundEnabled)
			assert.Equal(t, tt.wantMusic, sound.musicEnabled)
			assert.Equal(t, session.Settings{SoundEnabled: tt.wantSound, MusicEnabled: tt.wantMusic}, p.session.Settings())

			v, err := store.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, "false", v)
		})
	}
}

func TestPlaying_RecordsActiveFrames(t *testing.T) {
	p, _ := newTestScene(t, storage.NewMemoryStore())
	filename := filepath.Join(t.TempDir(), "run.json")
	p.EnableRecording(filename, 12345, frame)

	p.step(system.InputState{PointerX: 200, PointerY: 400, Pressed: true}, keyInput{}, frame)
	p.step(system.InputState{PointerX: 210, PointerY: 400, Moved: true}, keyInput{}, frame)
	p.step(system.InputState{}, keyInput{pause: true}, frame)
	p.step(system.InputState{}, keyInput{}, frame) // paused, not recorded

	assert.Equal(t, 2, p.recorder.FrameCount())

	p.step(system.InputState{}, keyInput{save: true}, frame)
	data, err := replay.LoadReplay(filename)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 16000, data.FrameUs)
	require.Len(t, data.Frames, 2)
	assert.True(t, data.Frames[0].P)
	assert.True(t, data.Frames[1].M)
}

func TestPlaying_OnExit(t *testing.T) {
	store := storage.NewMemoryStore()
	p, sound := newTestScene(t, store)
	filename := filepath.Join(t.TempDir(), "exit.json")
	p.EnableRecording(filename, 1, frame)
	p.step(system.InputState{}, keyInput{}, frame)

	p.OnExit()

	v, err := store.Get(storage.KeyPaused)
	require.NoError(t, err)
	assert.Equal(t, "true", v, "leaving mid-run saves the session")
	assert.Equal(t, 1, sound.musicStops)
	assert.False(t, p.recorder.IsRecording())
	_, err = os.Stat(filename)
	assert.NoError(t, err)
}

func TestPlaying_RestoresSavedScore(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyPaused, "true"))
	require.NoError(t, store.Set(storage.KeySavedScore, "70"))

	p, _ := newTestScene(t, store)

	assert.Equal(t, 70, p.session.Score())
}
