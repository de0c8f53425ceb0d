// Package gridgraph provides the grid model searched by the bfs package:
// dimension queries, cell lookup and neighbour enumeration in a fixed
// East, West, South, North order.
package gridgraph

import "fmt"

// New returns an all-Free grid with the given dimensions.
// Negative dimensions are treated as zero, producing an empty grid.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// From2D builds a Grid from a rectangular 2D slice, deep-copying the input.
// An empty outer slice, or rows of length zero, yield an empty grid.
// Returns ErrNonRectangular if any row length differs and ErrInvalidCell
// if a value is neither Free nor Wall.
// Complexity: O(rows×cols) time and memory.
func From2D(values [][]Cell) (*Grid, error) {
	if len(values) == 0 {
		return New(0, 0), nil
	}
	rows, cols := len(values), len(values[0])
	g := New(rows, cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if !v.Valid() {
				return nil, fmt.Errorf("%w: %d at %s", ErrInvalidCell, v, Coord{Row: r, Col: c})
			}
			g.cells[r*cols+c] = v
		}
	}

	return g, nil
}

// FromInts builds a Grid from 0/1 integers (0 = Free, 1 = Wall).
// Validation matches From2D.
func FromInts(values [][]int) (*Grid, error) {
	cells := make([][]Cell, len(values))
	for r, row := range values {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			if v < 0 || v > int(Wall) {
				return nil, fmt.Errorf("%w: %d at %s", ErrInvalidCell, v, Coord{Row: r, Col: c})
			}
			cells[r][c] = Cell(v)
		}
	}

	return From2D(cells)
}

// Rows returns the number of rows (0 for a nil grid).
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns (0 for a nil grid).
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// Empty reports whether the grid has no rows or no columns.
func (g *Grid) Empty() bool {
	return g.Rows() == 0 || g.Cols() == 0
}

// Start returns the fixed start coordinate (0,0).
func (g *Grid) Start() Coord {
	return Coord{}
}

// Goal returns the fixed goal coordinate (Rows-1, Cols-1).
// The result is meaningless for an empty grid.
func (g *Grid) Goal() Coord {
	return Coord{Row: g.Rows() - 1, Col: g.Cols() - 1}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows() && c.Col >= 0 && c.Col < g.Cols()
}

// At returns the cell value at c. The caller must ensure InBounds(c).
// Complexity: O(1).
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.index(c)]
}

// IsWall reports whether c is in bounds and holds a Wall.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.At(c) == Wall
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// East, West, South, North. Cell values are not consulted.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Set stores v at c. Returns ErrOutOfBounds or ErrInvalidCell.
func (g *Grid) Set(c Coord, v Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCell, v)
	}
	g.cells[g.index(c)] = v

	return nil
}

// Toggle flips c between Free and Wall. Start and Goal are fixed and
// return ErrFixedCell.
func (g *Grid) Toggle(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if c == g.Start() || c == g.Goal() {
		return fmt.Errorf("%w: %s", ErrFixedCell, c)
	}
	i := g.index(c)
	if g.cells[i] == Wall {
		g.cells[i] = Free
	} else {
		g.cells[i] = Wall
	}

	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := New(g.Rows(), g.Cols())
	if g != nil {
		copy(cp.cells, g.cells)
	}
	return cp
}

// WallCount returns the number of Wall cells.
func (g *Grid) WallCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, v := range g.cells {
		if v == Wall {
			n++
		}
	}
	return n
}

// Cells returns a fresh 2D copy of the grid values.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.Rows())
	for r := range out {
		out[r] = make([]Cell, g.Cols())
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// index maps c to its row-major offset: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major offset back to a Coord.
func (g *Grid) coordinate(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}
