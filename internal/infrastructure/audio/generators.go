package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// LaserGenerator generates a short downward pitch sweep for player shots
type LaserGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewLaserGenerator creates a laser sound generator
func NewLaserGenerator(sr beep.SampleRate) *LaserGenerator {
	return &LaserGenerator{sr: sr}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 1400Hz falling to ~400Hz
		freq := 400 + 1000*math.Exp(-t*30)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-t * 25)
		sample := 0.12 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates filtered noise with a rumble
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

// NewExplosionGenerator creates an explosion sound generator
func NewExplosionGenerator(sr beep.SampleRate) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low-pass for a duller boom
		g.prev += 0.2 * (noise - g.prev)
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.5*g.prev + rumble) * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a rising two-note chime for power-up pickups
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 120)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 660.0
		if g.pos >= half {
			freq = 990.0
		}
		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*6)
		sample := 0.15 * envelope * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// MusicGenerator generates an endless bass arpeggio
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int // samples per note
}

// bassline in Hz, one note per step
var bassline = []float64{110, 110, 130.81, 98, 110, 146.83, 130.81, 98}

// NewMusicGenerator creates a music generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 250), // 120 BPM eighth notes
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (g.pos / g.samples) % len(bassline)
		notePos := g.pos % g.samples
		t := float64(notePos) / float64(g.sr)

		freq := bassline[step]
		envelope := math.Exp(-t * 4)

		// Soft square from three odd harmonics
		sample := math.Sin(2*math.Pi*freq*t) + math.Sin(6*math.Pi*freq*t)/3 + math.Sin(10*math.Pi*freq*t)/5
		sample *= 0.06 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
