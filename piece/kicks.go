package piece

import "slices"

// Offset is a translation in grid cells. Positive DY moves down.
type Offset struct {
	DX, DY int
}

type transition struct {
	from, to Rotation
}

// Offsets below are in grid coordinates (y down). They are tried in order
// after the in-place rotation fails.
var commonKicks = map[transition][]Offset{
	{North, East}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{East, North}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{East, South}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{South, East}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{South, West}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{West, South}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{West, North}: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{North, West}: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var barKicks = map[transition][]Offset{
	{North, East}: {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{East, North}: {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{East, South}: {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{South, East}: {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{South, West}: {{2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{West, South}: {{-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{West, North}: {{1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{North, West}: {{-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// WallKicks returns the ordered kick offsets to try when rotating a piece of
// type t from one state to another. The O piece never kicks and transitions
// between non-adjacent states have no entries; both return nil. The returned
// slice is a copy.
func WallKicks(t Type, from, to Rotation) []Offset {
	mustValid(t)
	table := commonKicks
	switch t {
	case O:
		return nil
	case I:
		table = barKicks
	}
	return slices.Clone(table[transition{from.normalize(), to.normalize()}])
}
