package main

import (
	"embed"
	"flag"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/skyraid/internal/application/game"
	"github.com/younwookim/skyraid/internal/application/scene/playing"
	"github.com/younwookim/skyraid/internal/application/session"
	"github.com/younwookim/skyraid/internal/infrastructure/audio"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the outcome")
	flag.Parse()

	logger := newLogger()

	cfg, err := loadTuning()
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	if *replayFlag != "" {
		if err := runReplay(os.Stdout, *replayFlag, cfg, logger); err != nil {
			logger.Fatal("replay failed", "file", *replayFlag, "err", err)
		}
		return
	}

	store := openStore(logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to flush store", "err", err)
		}
	}()

	sound := audio.NewSoundManager(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
	}
	defer sound.Cleanup()

	seed := config.GetEnvInt64(config.EnvSeed, time.Now().UnixNano())
	frame := game.FrameDuration(game.DefaultTPS)
	sess := session.New(cfg, store, rand.New(rand.NewSource(seed)), logger)

	scene := playing.New(sess, sound, logger)
	if *recordFlag != "" {
		scene.EnableRecording(*recordFlag, seed, frame)
	}

	w, h := int(cfg.Area.Width), int(cfg.Area.Height)
	g := game.New(scene, w, h)
	g.SetDT(frame)

	// Set up ebiten
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sky Raid")
	ebiten.SetTPS(game.DefaultTPS)

	logger.Info("starting", "seed", seed, "area", cfg.Area)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game loop stopped", "err", err)
	}
	g.Close()
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyraid",
	})
	if lvl := config.GetEnv(config.EnvLogLevel, ""); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			logger.Warn("unknown log level", "level", lvl)
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}

// loadTuning reads SKYRAID_CONFIG_DIR when set, the embedded defaults otherwise
func loadTuning() (*config.TuningConfig, error) {
	if dir := config.GetEnv(config.EnvConfigDir, ""); dir != "" {
		return config.NewLoader(dir).LoadTuning()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, ".").LoadTuning()
}

// closingStore is a store that flushes on exit
type closingStore interface {
	storage.Store
	Close() error
}

type nopCloser struct{ storage.Store }

func (nopCloser) Close() error { return nil }

// openStore persists to SKYRAID_SAVE_FILE, falling back to memory
func openStore(logger *log.Logger) closingStore {
	path := config.GetEnv(config.EnvSaveFile, defaultSavePath())
	fileStore, err := storage.OpenFileStore(path)
	if err != nil {
		logger.Warn("save file unavailable, progress will not persist", "path", path, "err", err)
		return nopCloser{storage.NewMemoryStore()}
	}
	return storage.NewAsyncStore(fileStore, logger)
}

func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "skyraid.json"
	}
	return filepath.Join(dir, "skyraid", "save.json")
}
