package piece

// maxShapeSize is the largest bounding square of any tetromino (the I piece).
const maxShapeSize = 4

// Shape is a square boolean matrix with exactly four filled cells. Shapes are
// values; mutating a returned Shape never affects the table.
type Shape struct {
	size  int
	cells [maxShapeSize][maxShapeSize]bool
}

// Size returns the side length of the bounding square.
func (s Shape) Size() int {
	return s.size
}

// Filled reports whether the cell at column x, row y of the matrix is part of
// the piece. Coordinates outside the matrix are never filled.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return false
	}
	return s.cells[y][x]
}

// Cells returns the offsets of the filled cells in row-major order.
func (s Shape) Cells() [4]Offset {
	var out [4]Offset
	n := 0
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.cells[y][x] && n < len(out) {
				out[n] = Offset{DX: x, DY: y}
				n++
			}
		}
	}
	return out
}

// Matrix returns a freshly allocated copy of the cell matrix, indexed [y][x].
func (s Shape) Matrix() [][]bool {
	m := make([][]bool, s.size)
	for y := range m {
		m[y] = make([]bool, s.size)
		copy(m[y], s.cells[y][:s.size])
	}
	return m
}

func parseShape(rows ...string) Shape {
	s := Shape{size: len(rows)}
	filled := 0
	for y, row := range rows {
		if len(row) != s.size {
			panic("piece: shape rows must form a square")
		}
		for x, c := range row {
			if c == '#' {
				s.cells[y][x] = true
				filled++
			}
		}
	}
	if filled != 4 {
		panic("piece: shape must have exactly four cells")
	}
	return s
}

var shapes = [Count][rotationCount]Shape{
	I: {
		parseShape("....", "####", "....", "...."),
		parseShape("..#.", "..#.", "..#.", "..#."),
		parseShape("....", "....", "####", "...."),
		parseShape(".#..", ".#..", ".#..", ".#.."),
	},
	O: {
		parseShape("##", "##"),
		parseShape("##", "##"),
		parseShape("##", "##"),
		parseShape("##", "##"),
	},
	T: {
		parseShape(".#.", "###", "..."),
		parseShape(".#.", ".##", ".#."),
		parseShape("...", "###", ".#."),
		parseShape(".#.", "##.", ".#."),
	},
	S: {
		parseShape(".##", "##.", "..."),
		parseShape(".#.", ".##", "..#"),
		parseShape("...", ".##", "##."),
		parseShape("#..", "##.", ".#."),
	},
	Z: {
		parseShape("##.", ".##", "..."),
		parseShape("..#", ".##", ".#."),
		parseShape("...", "##.", ".##"),
		parseShape(".#.", "##.", "#.."),
	},
	J: {
		parseShape("#..", "###", "..."),
		parseShape(".##", ".#.", ".#."),
		parseShape("...", "###", "..#"),
		parseShape(".#.", ".#.", "##."),
	},
	L: {
		parseShape("..#", "###", "..."),
		parseShape(".#.", ".#.", ".##"),
		parseShape("...", "###", "#.."),
		parseShape("##.", ".#.", ".#."),
	},
}

// Get returns the shape of piece t in rotation r. It panics if t is not a
// valid piece type.
func Get(t Type, r Rotation) Shape {
	mustValid(t)
	return shapes[t][r.normalize()]
}
