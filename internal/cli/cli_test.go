package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wallbreak/gridgraph"
)

const wallRow = "...\n###\n...\n"

// run executes the command tree and captures both output streams.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

// writeFile stores content in a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
	return exitErr.Code
}

func TestSolve_WithBoon(t *testing.T) {
	path := writeFile(t, "maze.txt", wallRow)

	out, _, err := run(t, "", "solve", "--boon", path)
	require.NoError(t, err)
	assert.Equal(t, "steps: 4\nvisited: 11\nbroken wall: (1,2)\nS**\n##X\nooG\n", out)
}

func TestSolve_NoPath(t *testing.T) {
	path := writeFile(t, "maze.txt", wallRow)

	out, _, err := run(t, "", "solve", path)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Equal(t, "no path from (0,0) to (2,2)", err.Error())
	assert.Equal(t, "steps: none\nvisited: 3\nbroken wall: none\nSoo\n###\n..G\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, "..\n..\n", "solve", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "steps: 2\nvisited: 4\nbroken wall: none\n"), out)
}

func TestSolve_ConfigEnablesBoon(t *testing.T) {
	maze := writeFile(t, "maze.txt", wallRow)
	cfg := writeFile(t, "wallbreak.hcl", "search {\n  break_wall = true\n}\n")

	out, _, err := run(t, "", "--config", cfg, "solve", maze)
	require.NoError(t, err)
	assert.Contains(t, out, "steps: 4\n")

	// An explicit flag beats the file.
	_, _, err = run(t, "", "--config", cfg, "solve", "--boon=false", maze)
	assert.Equal(t, 1, exitCode(t, err))
}

func TestSolve_StateLimit(t *testing.T) {
	path := writeFile(t, "maze.txt", wallRow)

	_, _, err := run(t, "", "solve", "--boon", "--max-states", "2", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state limit reached")
}

func TestSolve_BadInput(t *testing.T) {
	_, _, err := run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "..\n.x\n", "solve", "-")
	assert.ErrorIs(t, err, gridgraph.ErrInvalidCell)

	_, _, err = run(t, "...\n..\n", "solve", "-")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing file":   {"solve"},
		"extra file":     {"analyze", "a", "b"},
		"unknown flag":   {"solve", "--nope", "x"},
		"bad log level":  {"--log-level", "trace", "analyze", "-"},
		"bad log format": {"--log-format", "xml", "analyze", "-"},
		"small maze":     {"gen", "-r", "2"},
		"bad density":    {"gen", "--density", "1.5"},
		"negative limit": {"solve", "--max-states", "-1", "-"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, "..\n..\n", args...)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(t, err))
		})
	}
}

func TestGen(t *testing.T) {
	out, logs, err := run(t, "", "gen", "-r", "4", "-c", "5", "--seed", "7")
	require.NoError(t, err)

	g, err := gridgraph.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.True(t, g.Connected())
	assert.Contains(t, logs, "Maze generated.")
	assert.Contains(t, logs, "maze_id=")

	again, _, err := run(t, "", "gen", "-r", "4", "-c", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed must give the same maze")
}

func TestGen_ConfigAndFlags(t *testing.T) {
	cfg := writeFile(t, "wallbreak.hcl", `
maze {
  rows = 3
  cols = default_cols - 11
  seed = 11
}

log {
  format = "json"
}
`)

	out, logs, err := run(t, "", "--config", cfg, "gen")
	require.NoError(t, err)
	g, err := gridgraph.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Contains(t, logs, `"msg":"Maze generated."`)

	out, logs, err = run(t, "", "--config", cfg, "--log-format", "text", "gen", "-r", "6")
	require.NoError(t, err)
	g, err = gridgraph.ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Contains(t, logs, "msg=\"Maze generated.\"")
}

func TestGen_BadConfig(t *testing.T) {
	cfg := writeFile(t, "wallbreak.hcl", "maze {\n  rows = \n")
	_, _, err := run(t, "", "--config", cfg, "gen")
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	out, _, err := run(t, wallRow, "analyze", "-")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"rows: 3",
		"cols: 3",
		"walls: 3",
		"connected: false",
		"min breaks: 1",
		"steps: none",
		"steps with boon: 4",
		"boon breaks: (1,2)",
		"",
	}, "\n"), out)
}

func TestAnalyze_Empty(t *testing.T) {
	out, _, err := run(t, "", "analyze", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "rows: 0\n")
	assert.Contains(t, out, "min breaks: none\n")
	assert.Contains(t, out, "steps with boon: none\n")
}

func TestReplay_Last(t *testing.T) {
	out, _, err := run(t, "..\n..\n", "replay", "--last", "-")
	require.NoError(t, err)
	assert.Equal(t, "7/7 done (1,1)\nS*\noG\n\n", out)
}

func TestReplay_Play(t *testing.T) {
	out, _, err := run(t, "..\n..\n", "replay", "--interval", "1ms", "-")
	require.NoError(t, err)

	var headers []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "/7 ") {
			headers = append(headers, line)
		}
	}
	require.Len(t, headers, 7)
	assert.Equal(t, "1/7 exploring (0,0)", headers[0])
	assert.Equal(t, "5/7 revealing (0,0)", headers[4])
	assert.Equal(t, "7/7 done (1,1)", headers[6])
}

func TestReplay_BrokenWall(t *testing.T) {
	out, _, err := run(t, wallRow, "replay", "--boon", "--last", "-")
	require.NoError(t, err)
	assert.Equal(t, "16/16 done (2,2) broken (1,2)\nS**\n##X\nooG\n\n", out)
}

func TestReplay_Empty(t *testing.T) {
	out, _, err := run(t, "", "replay", "-")
	require.NoError(t, err)
	assert.Equal(t, "nothing to replay\n", out)
}

func TestReplay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Execute(ctx, []string{"replay", "-"}, strings.NewReader(wallRow), &out, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
