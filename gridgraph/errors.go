package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCell indicates a cell value other than Free or Wall.
	ErrInvalidCell = errors.New("gridgraph: invalid cell value")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrFixedCell indicates an attempt to toggle the start or goal cell.
	ErrFixedCell = errors.New("gridgraph: start and goal cells cannot be toggled")
)
