// Package gridgraph defines the cell, coordinate and search-state types
// shared by the grid model and the bfs package.
package gridgraph

import "fmt"

// Cell is the value stored in a grid cell.
type Cell uint8

const (
	// Free cells can always be entered.
	Free Cell = iota
	// Wall cells can only be entered by spending the one-time wall break.
	Wall
)

// Valid reports whether c is one of the recognised cell kinds.
func (c Cell) Valid() bool {
	return c == Free || c == Wall
}

// String returns the text-format rune for c: "." for Free, "#" for Wall.
func (c Cell) String() string {
	switch c {
	case Free:
		return "."
	case Wall:
		return "#"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Coord is a 0-indexed (row, column) position.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate one step from c in direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Direction is a unit step on the grid.
type Direction struct {
	DRow, DCol int
}

var (
	East  = Direction{DRow: 0, DCol: 1}
	West  = Direction{DRow: 0, DCol: -1}
	South = Direction{DRow: 1, DCol: 0}
	North = Direction{DRow: -1, DCol: 0}
)

// Directions is the neighbour enumeration order: East, West, South, North.
// It decides which of several equal-length shortest paths a search returns
// and the exact discovery order it records, so it must not change.
var Directions = [4]Direction{East, West, South, North}

// State is a search node: a position plus how many walls have been broken
// to reach it (0 or 1). States with equal Coord but different WallsBroken
// are distinct.
type State struct {
	Coord
	WallsBroken int
}

// String formats s as "(row,col)/walls".
func (s State) String() string {
	return fmt.Sprintf("%s/%d", s.Coord, s.WallsBroken)
}

// Grid is a rectangular matrix of cells stored row-major.
// The zero value and a nil *Grid are both empty grids.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// Overlay carries the search output drawn on top of a grid by Render.
type Overlay struct {
	// Visited cells are drawn as 'o' unless they are walls or on the path.
	Visited []Coord
	// Path cells are drawn as '*'; a wall on the path is drawn as 'X'.
	Path []Coord
}
