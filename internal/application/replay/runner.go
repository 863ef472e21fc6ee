package replay

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyraid/internal/application/session"
	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
	"github.com/younwookim/skyraid/internal/infrastructure/storage"
)

// Result summarizes a headless replay run
type Result struct {
	Frames         int  // frames simulated
	Score          int  // final score
	GameOver       bool // the run ended in game over
	GameOverFrame  int  // frame of the game over, -1 if none
	EnemiesKilled  int
	ShotsFired     int
	PowerUpsPicked int
}

// Run replays the recorded input against a fresh session with an in-memory
// store. The same data and tuning always produce the same Result.
func Run(data ReplayData, cfg *config.TuningConfig, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	replayer := NewReplayer(data)
	rng := rand.New(rand.NewSource(replayer.Seed()))
	s := session.New(cfg, storage.NewMemoryStore(), rng, logger)
	if err := s.Start(); err != nil {
		return Result{}, err
	}

	res := Result{GameOverFrame: -1}
	dt := replayer.FrameDuration()

	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		s.HandleInput(input)
		events := s.Advance(dt)
		res.Frames++

		for _, ev := range events {
			switch e := ev.(type) {
			case world.EnemyDestroyed:
				res.EnemiesKilled++
			case world.BulletFired:
				res.ShotsFired += e.Count
			case world.PowerUpCollected:
				res.PowerUpsPicked++
			case world.GameOver:
				res.GameOver = true
				res.GameOverFrame = replayer.CurrentFrame() - 1
			}
		}

		if s.State() == state.StateGameOver {
			break
		}
	}

	res.Score = s.Score()
	return res, nil
}
