package config

import (
	"time"

	"github.com/younwookim/skyraid/internal/domain/entity"
)

// TuningConfig is the root config for tuning.yaml
type TuningConfig struct {
	Area    AreaConfig    `yaml:"area"`
	Sizes   SizesConfig   `yaml:"sizes"`
	Speeds  SpeedsConfig  `yaml:"speeds"`
	Timing  TimingConfig  `yaml:"timing"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Player  PlayerConfig  `yaml:"player"`
	Debug   bool          `yaml:"debug"` // fatal on invariant violations
}

// AreaConfig is the size of the play area in world units
type AreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SizesConfig struct {
	Player  SizeConfig `yaml:"player"`
	Bullet  SizeConfig `yaml:"bullet"`
	Enemy   SizeConfig `yaml:"enemy"`
	PowerUp SizeConfig `yaml:"powerUp"`
}

// SpeedsConfig holds per-step displacements (units per cadence firing)
type SpeedsConfig struct {
	Bullet      float64 `yaml:"bullet"`      // per tick, upward
	EnemyBullet float64 `yaml:"enemyBullet"` // per tick, downward
	Enemy       float64 `yaml:"enemy"`       // per tick, downward
	PowerUp     float64 `yaml:"powerUp"`     // per power-up step, downward
}

// TimingConfig holds every cadence in milliseconds
type TimingConfig struct {
	TickMs         int `yaml:"tickMs"`
	PowerUpStepMs  int `yaml:"powerUpStepMs"`
	FireMs         int `yaml:"fireMs"`
	EnemySpawnMs   int `yaml:"enemySpawnMs"`
	EnemyFireMs    int `yaml:"enemyFireMs"`
	PowerUpSpawnMs int `yaml:"powerUpSpawnMs"`
	EffectMs       int `yaml:"effectMs"`
	ExplosionAgeMs int `yaml:"explosionAgeMs"`
}

type SpawnConfig struct {
	PowerUpChance    float64 `yaml:"powerUpChance"`
	DoubleShotOffset float64 `yaml:"doubleShotOffset"` // horizontal offset of each double-shot bullet from center
}

type ScoringConfig struct {
	EnemyDestroyed int `yaml:"enemyDestroyed"`
}

type PlayerConfig struct {
	SpawnBottomMargin float64 `yaml:"spawnBottomMargin"`
}

// Dimensions converts the size section into entity dimensions
func (c SizesConfig) Dimensions() entity.Dimensions {
	return entity.Dimensions{
		Player:  entity.Size{Width: c.Player.Width, Height: c.Player.Height},
		Bullet:  entity.Size{Width: c.Bullet.Width, Height: c.Bullet.Height},
		Enemy:   entity.Size{Width: c.Enemy.Width, Height: c.Enemy.Height},
		PowerUp: entity.Size{Width: c.PowerUp.Width, Height: c.PowerUp.Height},
	}
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (t TimingConfig) Tick() time.Duration         { return ms(t.TickMs) }
func (t TimingConfig) PowerUpStep() time.Duration  { return ms(t.PowerUpStepMs) }
func (t TimingConfig) Fire() time.Duration         { return ms(t.FireMs) }
func (t TimingConfig) EnemySpawn() time.Duration   { return ms(t.EnemySpawnMs) }
func (t TimingConfig) EnemyFire() time.Duration    { return ms(t.EnemyFireMs) }
func (t TimingConfig) PowerUpSpawn() time.Duration { return ms(t.PowerUpSpawnMs) }
func (t TimingConfig) Effect() time.Duration       { return ms(t.EffectMs) }
func (t TimingConfig) ExplosionAge() time.Duration { return ms(t.ExplosionAgeMs) }
