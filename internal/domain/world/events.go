package world

import "github.com/younwookim/skyraid/internal/domain/entity"

// Event is a discrete occurrence reported to sound and UI collaborators
type Event interface {
	isEvent()
}

// HitCause identifies what struck the player
type HitCause int

const (
	HitByEnemy HitCause = iota
	HitByEnemyBullet
)

// EnemyDestroyed is emitted when a player bullet destroys an enemy
type EnemyDestroyed struct {
	EnemyID entity.EntityID
	X, Y    float64
}

func (EnemyDestroyed) isEvent() {}

// PlayerHit is emitted on an unshielded hit on the player
type PlayerHit struct {
	Cause HitCause
}

func (PlayerHit) isEvent() {}

// BulletFired is emitted each time the player fires (one or two bullets)
type BulletFired struct {
	Count int
}

func (BulletFired) isEvent() {}

// PowerUpCollected is emitted when the player picks up a power-up
type PowerUpCollected struct {
	Kind entity.PowerUpKind
}

func (PowerUpCollected) isEvent() {}

// GameOver is the terminal notification carrying the final score
type GameOver struct {
	Score int
}

func (GameOver) isEvent() {}

// Emit queues an event for the next drain
func (w *World) Emit(ev Event) {
	w.events = append(w.events, ev)
}

// DrainEvents returns the queued events and clears the queue
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}
