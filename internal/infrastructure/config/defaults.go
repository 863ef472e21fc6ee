package config

import (
	"errors"
	"fmt"
)

// Default returns the standard tuning. Values loaded from tuning.yaml are
// decoded on top of it, so a partial file only overrides what it names.
func Default() TuningConfig {
	return TuningConfig{
		Area: AreaConfig{Width: 400, Height: 800},
		Sizes: SizesConfig{
			Player:  SizeConfig{Width: 60, Height: 60},
			Bullet:  SizeConfig{Width: 6, Height: 20},
			Enemy:   SizeConfig{Width: 50, Height: 50},
			PowerUp: SizeConfig{Width: 40, Height: 40},
		},
		Speeds: SpeedsConfig{
			Bullet:      10,
			EnemyBullet: 8,
			Enemy:       5,
			PowerUp:     3,
		},
		Timing: TimingConfig{
			TickMs:         16,
			PowerUpStepMs:  50,
			FireMs:         300,
			EnemySpawnMs:   1500,
			EnemyFireMs:    2000,
			PowerUpSpawnMs: 6000,
			EffectMs:       10000,
			ExplosionAgeMs: 700,
		},
		Spawn: SpawnConfig{
			PowerUpChance:    0.4,
			DoubleShotOffset: 10,
		},
		Scoring: ScoringConfig{EnemyDestroyed: 10},
		Player:  PlayerConfig{SpawnBottomMargin: 50},
	}
}

// Validate rejects configurations the simulation cannot run with
func (c TuningConfig) Validate() error {
	var errs []error

	if c.Area.Width <= 0 || c.Area.Height <= 0 {
		errs = append(errs, fmt.Errorf("area must be positive, got %gx%g", c.Area.Width, c.Area.Height))
	}

	sizes := map[string]SizeConfig{
		"player":  c.Sizes.Player,
		"bullet":  c.Sizes.Bullet,
		"enemy":   c.Sizes.Enemy,
		"powerUp": c.Sizes.PowerUp,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("size %s must be positive, got %gx%g", name, s.Width, s.Height))
		}
		if s.Width > c.Area.Width || s.Height > c.Area.Height {
			errs = append(errs, fmt.Errorf("size %s does not fit the area", name))
		}
	}

	intervals := map[string]int{
		"tickMs":         c.Timing.TickMs,
		"powerUpStepMs":  c.Timing.PowerUpStepMs,
		"fireMs":         c.Timing.FireMs,
		"enemySpawnMs":   c.Timing.EnemySpawnMs,
		"enemyFireMs":    c.Timing.EnemyFireMs,
		"powerUpSpawnMs": c.Timing.PowerUpSpawnMs,
		"effectMs":       c.Timing.EffectMs,
		"explosionAgeMs": c.Timing.ExplosionAgeMs,
	}
	for name, v := range intervals {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("timing %s must be positive, got %d", name, v))
		}
	}

	if c.Spawn.PowerUpChance < 0 || c.Spawn.PowerUpChance > 1 {
		errs = append(errs, fmt.Errorf("powerUpChance must be within [0,1], got %g", c.Spawn.PowerUpChance))
	}
	if c.Scoring.EnemyDestroyed < 0 {
		errs = append(errs, fmt.Errorf("enemyDestroyed score must not be negative, got %d", c.Scoring.EnemyDestroyed))
	}

	return errors.Join(errs...)
}
