// Package board implements the playfield grid: collision tests, locking
// pieces into cells, line clearing, ghost projection and surface statistics.
package board

import (
	"fmt"
	"slices"

	"github.com/plus3/tetrion/piece"
)

const (
	DefaultWidth   = 10
	DefaultVisible = 20
	DefaultHidden  = 2
)

// Cell is the content of one grid cell: empty, or the type of the piece that
// was locked there.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// Filled returns the cell value for a locked piece of type t.
func Filled(t piece.Type) Cell {
	return Cell(t + 1)
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Type returns the piece type held by the cell, and false if it is empty.
func (c Cell) Type() (piece.Type, bool) {
	if c == Empty {
		return 0, false
	}
	return piece.Type(c - 1), true
}

// Board is a fixed-size grid of cells. Rows 0 through Hidden()-1 are the
// hidden spawn rows above the visible field; positions above row 0 are open
// space. The dimensions never change after construction.
type Board struct {
	width  int
	height int
	hidden int
	cells  []Cell
}

// New creates an empty board of the given width and visible height with
// hidden extra rows on top.
func New(width, visible, hidden int) *Board {
	if width <= 0 || visible <= 0 || hidden < 0 {
		panic("board: invalid dimensions")
	}
	return &Board{
		width:  width,
		height: visible + hidden,
		hidden: hidden,
		cells:  make([]Cell, width*(visible+hidden)),
	}
}

// NewDefault creates an empty 10 wide board with 20 visible and 2 hidden rows.
func NewDefault() *Board {
	return New(DefaultWidth, DefaultVisible, DefaultHidden)
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the total number of rows, hidden rows included.
func (b *Board) Height() int { return b.height }

// Hidden returns the number of hidden rows at the top of the grid.
func (b *Board) Hidden() int { return b.hidden }

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Cell returns the content at column x, row y. Coordinates outside the grid
// read as empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.inside(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Occupied reports whether the cell is filled or lies outside the left,
// right or bottom walls. Cells above the grid are not occupied.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return !b.cells[y*b.width+x].IsEmpty()
}

// Rows returns a copy of the grid, indexed [y][x].
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range rows {
		rows[y] = slices.Clone(b.row(y))
	}
	return rows
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = slices.Clone(b.cells)
	return &c
}

// CopyFrom overwrites b with the cells of src. Both boards must have the
// same dimensions.
func (b *Board) CopyFrom(src *Board) {
	if b.width != src.width || b.height != src.height {
		panic(fmt.Sprintf("board: copy from %dx%d into %dx%d", src.width, src.height, b.width, b.height))
	}
	b.hidden = src.hidden
	copy(b.cells, src.cells)
}

// IsValid reports whether a piece of type t in rotation r at pos fits: every
// filled cell must be inside the side walls, above the floor, and on an empty
// cell when it is within the grid.
func (b *Board) IsValid(t piece.Type, pos piece.Point, r piece.Rotation) bool {
	for _, off := range piece.Get(t, r).Cells() {
		p := pos.Add(off)
		if b.Occupied(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Lock writes t into every filled cell of the piece that falls inside the
// grid. Cells outside the grid are skipped; callers validate first.
func (b *Board) Lock(t piece.Type, pos piece.Point, r piece.Rotation) {
	for _, off := range piece.Get(t, r).Cells() {
		p := pos.Add(off)
		if b.inside(p.X, p.Y) {
			b.cells[p.Y*b.width+p.X] = Filled(t)
		}
	}
}

// ClearLines removes every full row, shifting the rows above down and
// inserting empty rows at the top. It returns the original indices of the
// removed rows in ascending order.
func (b *Board) ClearLines() []int {
	var cleared []int
	removed := 0
	for y := b.height - 1; y >= 0; {
		if !b.full(y) {
			y--
			continue
		}
		// Every removal so far happened at or below y, so the row now at y
		// started out removed rows higher.
		cleared = append(cleared, y-removed)
		b.removeRow(y)
		removed++
	}
	slices.Reverse(cleared)
	return cleared
}

// Ghost returns the lowest position reachable by dropping the piece straight
// down from pos.
func (b *Board) Ghost(t piece.Type, pos piece.Point, r piece.Rotation) piece.Point {
	ghost := pos
	for b.IsValid(t, piece.Point{X: ghost.X, Y: ghost.Y + 1}, r) {
		ghost.Y++
	}
	return ghost
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) row(y int) []Cell {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) full(y int) bool {
	return !slices.Contains(b.row(y), Empty)
}

func (b *Board) removeRow(y int) {
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
	clear(b.row(0))
}
