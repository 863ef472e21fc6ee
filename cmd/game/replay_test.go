package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

func writeReplay(t *testing.T, data replay.ReplayData) string {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestLoadTuning_Embedded(t *testing.T) {
	t.Setenv(config.EnvConfigDir, "")

	cfg, err := loadTuning()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoadTuning_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.TuningFile), []byte("scoring:\n  enemyDestroyed: 25\n"), 0o644))
	t.Setenv(config.EnvConfigDir, dir)

	cfg, err := loadTuning()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scoring.EnemyDestroyed)
	assert.Equal(t, config.Default().Area, cfg.Area)
}

func TestRunReplay(t *testing.T) {
	cfg := config.Default()
	path := writeReplay(t, replay.CreateTestReplayData(600, 200, 700))

	var out bytes.Buffer
	require.NoError(t, runReplay(&out, path, &cfg, log.New(io.Discard)))

	assert.Contains(t, out.String(), "frames:")
	assert.Contains(t, out.String(), "score:")
}

func TestRunReplay_Deterministic(t *testing.T) {
	cfg := config.Default()
	path := writeReplay(t, replay.CreateTestReplayData(1200, 120, 600))

	var first, second bytes.Buffer
	require.NoError(t, runReplay(&first, path, &cfg, log.New(io.Discard)))
	require.NoError(t, runReplay(&second, path, &cfg, log.New(io.Discard)))

	assert.Equal(t, first.String(), second.String())
}

func TestRunReplay_MissingFile(t *testing.T) {
	cfg := config.Default()
	err := runReplay(io.Discard, filepath.Join(t.TempDir(), "nope.json"), &cfg, log.New(io.Discard))
	assert.Error(t, err)
}

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name string
		res  replay.Result
		want string
	}{
		{"game over", replay.Result{Frames: 90, Score: 30, GameOver: true, GameOverFrame: 89}, "game over at frame 89"},
		{"survived", replay.Result{Frames: 90, GameOverFrame: -1}, "survived"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printResult(&out, tt.res)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
