package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wallbreak/gridgraph"
	"github.com/katalvlaran/wallbreak/internal/config"
	"github.com/katalvlaran/wallbreak/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps a command-line mistake with exit code 2.
func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// session is shared by all commands of one invocation.
type session struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// Execute runs the command tree with args, reading grids from in, printing
// results to out and logs to errOut.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	root := NewRootCommand(in, out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand assembles the wallbreak command and its subcommands.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	s := &session{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "wallbreak",
		Short: "Shortest paths through grid mazes with one optional wall break",
		Long: `wallbreak finds shortest paths from the top-left to the bottom-right
corner of a grid maze. With the boon enabled, the path may pass through
exactly one wall.

Maze files use '.' or '0' for free cells and '#' or '1' for walls, one row
per line.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "Path to an HCL config file")
	pf.StringVar(&s.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&s.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newGenCommand(s),
		newSolveCommand(s),
		newReplayCommand(s),
		newAnalyzeCommand(s),
	)
	return root
}

// setup loads the config, applies the global flags and installs the logger
// on the command context.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if s.configPath != "" {
		loaded, err := config.Load(s.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(s.logLevel)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = strings.ToLower(s.logFormat)
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%v", err)
	}
	s.cfg = cfg

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, s.errOut)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	logger.Debug("Configuration loaded.", "config", s.configPath, "command", cmd.Name())
	return nil
}

// oneFile requires exactly one FILE argument.
func oneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError("%s: expected exactly one FILE argument, got %d", cmd.Name(), len(args))
	}
	return nil
}

// readGrid parses the maze at path; "-" reads from in.
func readGrid(in io.Reader, path string) (*gridgraph.Grid, error) {
	if path == "-" {
		g, err := gridgraph.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return g, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze file: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// formatSteps prints a path length, or "none" for a missing path.
func formatSteps(n int) string {
	if n < 0 {
		return "none"
	}
	return fmt.Sprintf("%d", n)
}
