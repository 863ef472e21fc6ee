package session

import "time"

// cadence fires every fixed interval of simulated time.
// It replaces wall-clock timers, so pausing simply stops feeding it.
type cadence struct {
	every time.Duration
	acc   time.Duration
}

func newCadence(every time.Duration) cadence {
	return cadence{every: every}
}

// advance adds dt and returns how many intervals completed
func (c *cadence) advance(dt time.Duration) int {
	c.acc += dt
	n := 0
	for c.acc >= c.every {
		c.acc -= c.every
		n++
	}
	return n
}

// reset restarts the interval from zero
func (c *cadence) reset() {
	c.acc = 0
}
