package board

import (
	"fmt"
	"strings"

	"github.com/plus3/tetrion/piece"
)

const emptyGlyph = '.'

// Parse builds a board from text rows, top row first. '.' is an empty cell
// and a piece letter (I, O, T, S, Z, J, L) is a cell locked by that piece.
// The first hidden rows are treated as the hidden spawn area.
func Parse(hidden int, rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows) <= hidden {
		return nil, fmt.Errorf("board: need more than %d rows, got %d", hidden, len(rows))
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("board: empty row")
	}

	b := New(width, len(rows)-hidden, hidden)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("board: row %d has width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			cell, err := parseGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("board: row %d col %d: %w", y, x, err)
			}
			b.cells[y*width+x] = cell
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(hidden int, rows ...string) *Board {
	b, err := Parse(hidden, rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the grid in the format accepted by Parse, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for _, c := range b.row(y) {
			sb.WriteByte(glyph(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(c Cell) byte {
	t, ok := c.Type()
	if !ok {
		return emptyGlyph
	}
	return t.String()[0]
}

func parseGlyph(r rune) (Cell, error) {
	if r == emptyGlyph {
		return Empty, nil
	}
	for _, t := range piece.Types {
		if t.String() == string(r) {
			return Filled(t), nil
		}
	}
	return Empty, fmt.Errorf("unknown glyph %q", r)
}
