package board

// Stats summarizes the surface of the stack.
type Stats struct {
	// Height is the tallest column height.
	Height int
	// Holes counts every empty cell below the first filled cell of its column.
	Holes int
	// Bumpiness is the sum of absolute height differences between neighbouring columns.
	Bumpiness int
	// Columns holds the stack height of each column.
	Columns []int
}

// Stats computes the surface statistics of the current grid. A column's
// height is the distance from its first filled cell to the bottom of the
// grid, and zero for an empty column.
func (b *Board) Stats() Stats {
	s := Stats{Columns: make([]int, b.width)}
	for x := 0; x < b.width; x++ {
		top := -1
		for y := 0; y < b.height; y++ {
			if b.cells[y*b.width+x].IsEmpty() {
				if top >= 0 {
					s.Holes++
				}
				continue
			}
			if top < 0 {
				top = y
			}
		}
		if top >= 0 {
			s.Columns[x] = b.height - top
		}
		s.Height = max(s.Height, s.Columns[x])
		if x > 0 {
			s.Bumpiness += abs(s.Columns[x] - s.Columns[x-1])
		}
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
