package game

//go:generate go tool stringer -type=Action

// Action is an input already mapped from a physical device.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
	Hold
	Pause
)
