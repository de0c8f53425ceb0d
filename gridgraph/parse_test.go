package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallbreak/gridgraph"
)

// TestParse_RoundTrip checks that String output parses back to the same grid.
func TestParse_RoundTrip(t *testing.T) {
	src := ".#..\n..#.\n#...\n"
	g, err := gridgraph.ParseString(src)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 3, g.WallCount())
	assert.Equal(t, src, g.String())
}

// TestParse_Lenient accepts digits, CRLF line endings, blank lines and trailing spaces.
func TestParse_Lenient(t *testing.T) {
	g, err := gridgraph.ParseString("\r\n010  \r\n\n000\r\n")
	require.NoError(t, err)
	assert.Equal(t, ".#.\n...\n", g.String())
}

// TestParse_Errors covers ragged rows and unknown runes.
func TestParse_Errors(t *testing.T) {
	_, err := gridgraph.ParseString("..\n...\n")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.ParseString("..\n.x\n")
	require.ErrorIs(t, err, gridgraph.ErrInvalidCell)
	assert.Contains(t, err.Error(), "line 2, column 2")
}

// TestParse_Empty yields an empty grid for empty input.
func TestParse_Empty(t *testing.T) {
	g, err := gridgraph.Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Equal(t, "", g.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

// TestParse_ReadError wraps reader failures.
func TestParse_ReadError(t *testing.T) {
	_, err := gridgraph.Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

// TestMustParse_Panics on malformed fixtures.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { gridgraph.MustParse("?") })
}
