package state

// GameState represents the current state of a play session
type GameState int

const (
	StateLoading GameState = iota
	StateActive
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// transitions lists every allowed state change
var transitions = map[GameState][]GameState{
	StateLoading:  {StateActive},
	StateActive:   {StatePaused, StateGameOver, StateActive},
	StatePaused:   {StateActive},
	StateGameOver: {StateActive},
}

// CanTransition reports whether the session may move from s to next.
// Active to Active is a restart.
func (s GameState) CanTransition(next GameState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Simulating returns true while cadences run and input is accepted
func (s GameState) Simulating() bool {
	return s == StateActive
}
