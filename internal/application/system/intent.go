package system

// Intent is a pointer action delivered by a host
type Intent interface {
	isIntent()
}

// PressIntent starts a touch or click at an absolute pointer position
type PressIntent struct {
	X, Y float64
}

func (PressIntent) isIntent() {}

// MoveIntent drags the pointer to an absolute position
type MoveIntent struct {
	X, Y float64
}

func (MoveIntent) isIntent() {}

// ReleaseIntent ends the current touch or click
type ReleaseIntent struct{}

func (ReleaseIntent) isIntent() {}
