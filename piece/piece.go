// Package piece holds the static geometry of the seven tetrominoes: their
// cell matrices for every rotation state and the wall kick offsets tried
// when a rotation collides.
package piece

//go:generate go tool stringer -type=Type

// Type identifies one of the seven tetrominoes.
type Type int

const (
	I Type = iota
	O
	T
	S
	Z
	J
	L
)

// Count is the number of distinct piece types.
const Count = 7

// Types lists every piece type in declaration order.
var Types = [Count]Type{I, O, T, S, Z, J, L}

// Valid reports whether t is one of the seven piece types.
func (t Type) Valid() bool {
	return t >= I && t <= L
}

// Point is a cell coordinate on the playfield. X grows to the right and Y
// grows downward; negative Y values are above the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by o.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Spawn returns the position a freshly drawn piece of type t enters the
// field at, in its spawn rotation.
func Spawn(t Type) Point {
	mustValid(t)
	if t == O {
		return Point{X: 4, Y: 0}
	}
	return Point{X: 3, Y: 0}
}

func mustValid(t Type) {
	if !t.Valid() {
		panic("piece: invalid type " + t.String())
	}
}
