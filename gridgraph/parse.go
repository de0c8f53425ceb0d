package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid in text format: one row per line, '.' or '0' for Free,
// '#' or '1' for Wall. Blank lines and trailing whitespace are ignored, so
// the output of String parses back to an equal grid.
// Returns ErrNonRectangular for ragged rows and ErrInvalidCell for any
// other rune (wrapped with its 1-based line and column).
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		row := make([]Cell, 0, len(text))
		for col, ch := range text {
			switch ch {
			case '.', '0':
				row = append(row, Free)
			case '#', '1':
				row = append(row, Wall)
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidCell, ch, line, col+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return From2D(rows)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error. Intended for fixtures.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders g in text format, each row terminated by a newline.
// An empty grid renders as "".
func (g *Grid) String() string {
	if g.Empty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.At(Coord{Row: r, Col: c}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
