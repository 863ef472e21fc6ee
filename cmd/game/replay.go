package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyraid/internal/application/replay"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// runReplay simulates a recording without a window and prints the outcome
func runReplay(out io.Writer, filename string, cfg *config.TuningConfig, logger *log.Logger) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	logger.Info("replaying", "file", filename, "seed", data.Seed, "frames", len(data.Frames))
	res, err := replay.Run(*data, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to run replay: %w", err)
	}

	printResult(out, res)
	return nil
}

func printResult(out io.Writer, res replay.Result) {
	fmt.Fprintf(out, "frames:    %d\n", res.Frames)
	fmt.Fprintf(out, "score:     %d\n", res.Score)
	fmt.Fprintf(out, "kills:     %d\n", res.EnemiesKilled)
	fmt.Fprintf(out, "shots:     %d\n", res.ShotsFired)
	fmt.Fprintf(out, "power-ups: %d\n", res.PowerUpsPicked)
	if res.GameOver {
		fmt.Fprintf(out, "game over at frame %d\n", res.GameOverFrame)
	} else {
		fmt.Fprintln(out, "survived")
	}
}
