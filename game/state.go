package game

//go:generate go tool stringer -type=State

// State is the lifecycle state of a Controller.
type State int

const (
	Idle State = iota
	Playing
	Paused
	GameOver
	Completed
)

// Terminal reports whether only Start or Reset can leave the state.
func (s State) Terminal() bool {
	return s == GameOver || s == Completed
}
