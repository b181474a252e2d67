package piece

// Rotation is one of the four orientation states of a piece. Arithmetic on
// rotations always wraps modulo four.
type Rotation int

const (
	North Rotation = iota // spawn orientation
	East                  // one clockwise turn from spawn
	South                 // two turns from spawn
	West                  // one counter-clockwise turn from spawn
)

const rotationCount = 4

var rotationNames = [rotationCount]string{"0", "R", "2", "L"}

// CW returns the state reached by one clockwise turn.
func (r Rotation) CW() Rotation {
	return (r.normalize() + 1) % rotationCount
}

// CCW returns the state reached by one counter-clockwise turn.
func (r Rotation) CCW() Rotation {
	return (r.normalize() + rotationCount - 1) % rotationCount
}

// Adjacent reports whether to is a single quarter turn away from r.
func (r Rotation) Adjacent(to Rotation) bool {
	return r.CW() == to.normalize() || r.CCW() == to.normalize()
}

func (r Rotation) String() string {
	return rotationNames[r.normalize()]
}

func (r Rotation) normalize() Rotation {
	return ((r % rotationCount) + rotationCount) % rotationCount
}
