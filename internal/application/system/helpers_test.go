package system

import (
	"math/rand"

	"github.com/younwookim/skyraid/internal/domain/world"
	"github.com/younwookim/skyraid/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestConfig() *config.TuningConfig {
	cfg := config.Default()
	return &cfg
}

// createTestWorld returns a 400x800 world with the player at (170, 690)
func createTestWorld(cfg *config.TuningConfig) *world.World {
	return world.NewWorld(
		world.Area{Width: cfg.Area.Width, Height: cfg.Area.Height},
		cfg.Sizes.Dimensions(),
		cfg.Player.SpawnBottomMargin,
	)
}

func countEvents[T world.Event](events []world.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}
