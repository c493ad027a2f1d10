package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/coverage/internal/config"
	"github.com/katalvlaran/coverage/internal/logging"
)

// Exit codes.
const (
	CodeFailure = 1
	CodeUsage   = 2
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements error.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: CodeUsage, Message: fmt.Sprintf(format, args...)}
}

// Options is the parsed command line.
type Options struct {
	Rows         int
	Cols         int
	Stations     [][2]int
	ScenarioPath string
	// Metric and Strategy are empty when not given; scenario values or
	// defaults apply.
	Metric       string
	Strategy     string
	Workers      int
	PrintField   bool
	PrintMetrics bool
	LogLevel     string
	LogFormat    string
	Tracing      string
}

// Interactive reports whether the grid must be read from stdin.
func (o *Options) Interactive() bool {
	return o.ScenarioPath == "" && o.Rows == 0 && o.Cols == 0
}

// stationList collects repeated -station r,c flags.
type stationList [][2]int

func (s *stationList) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, len(*s))
	for i, rc := range *s {
		parts[i] = fmt.Sprintf("%d,%d", rc[0], rc[1])
	}
	return strings.Join(parts, " ")
}

func (s *stationList) Set(v string) error {
	rc, err := ParseStation(v)
	if err != nil {
		return err
	}
	*s = append(*s, rc)
	return nil
}

// errStationSyntax rejects a station not written as "row,col".
var errStationSyntax = errors.New(`station must be "row,col"`)

// ParseStation parses "row,col" with optional surrounding spaces.
func ParseStation(v string) ([2]int, error) {
	r, c, ok := strings.Cut(v, ",")
	if !ok {
		return [2]int{}, fmt.Errorf("%w: %q", errStationSyntax, v)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return [2]int{}, fmt.Errorf("%w: %q", errStationSyntax, v)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return [2]int{}, fmt.Errorf("%w: %q", errStationSyntax, v)
	}
	return [2]int{row, col}, nil
}

// Parse processes args with defaults taken from cfg. It returns the
// Options, whether the program should exit cleanly (help), or an ExitError.
func Parse(args []string, output io.Writer, cfg config.Config) (*Options, bool, error) {
	fs := flag.NewFlagSet("coverage", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
coverage - minimal covering radius of stations on a grid.

Usage:
  coverage [options]

With neither -rows/-cols nor -scenario, rows and columns are read from
stdin, followed by one "row,col" station per line until an empty line.

Options:
`)
		fs.PrintDefaults()
	}

	var stations stationList
	opts := &Options{}
	fs.IntVar(&opts.Rows, "rows", 0, "Number of grid rows.")
	fs.IntVar(&opts.Cols, "cols", 0, "Number of grid columns.")
	fs.Var(&stations, "station", "Station position as row,col. Repeatable.")
	fs.StringVar(&opts.ScenarioPath, "scenario", "", "Scenario file (.yaml, .yml or .hcl).")
	fs.StringVar(&opts.Metric, "metric", "", "Distance metric: chebyshev, euclidean, manhattan or minkowski:<p> (default chebyshev).")
	fs.StringVar(&opts.Strategy, "strategy", "", "Strategy: auto, brute, flood or kdtree (default auto).")
	fs.IntVar(&opts.Workers, "workers", cfg.Workers, "Worker goroutines; 0 uses GOMAXPROCS.")
	fs.BoolVar(&opts.PrintField, "print-field", false, "Print the full distance field.")
	fs.BoolVar(&opts.PrintMetrics, "metrics", false, "Print Prometheus metrics after solving.")
	fs.StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "Logging level: debug, info, warn or error.")
	fs.StringVar(&opts.LogFormat, "log-format", cfg.LogFormat, "Log output format: text or json.")
	fs.StringVar(&opts.Tracing, "tracing", cfg.Tracing, "Span exporter: off or stdout.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	opts.Stations = stations

	opts.LogLevel = strings.ToLower(opts.LogLevel)
	opts.LogFormat = strings.ToLower(opts.LogFormat)
	if err := (logging.Config{Level: opts.LogLevel, Format: opts.LogFormat}).Validate(); err != nil {
		return nil, false, usageError("invalid logging settings: %v", err)
	}
	opts.Tracing = strings.ToLower(opts.Tracing)
	if opts.Tracing != config.TracingOff && opts.Tracing != config.TracingStdout {
		return nil, false, usageError("invalid tracing: must be 'off' or 'stdout'")
	}
	if opts.Workers < 0 {
		return nil, false, usageError("invalid workers: must be >= 0")
	}

	gridGiven := opts.Rows != 0 || opts.Cols != 0
	if gridGiven && (opts.Rows == 0 || opts.Cols == 0) {
		return nil, false, usageError("-rows and -cols must be given together")
	}
	if gridGiven && opts.ScenarioPath != "" {
		return nil, false, usageError("-scenario cannot be combined with -rows/-cols")
	}
	if len(opts.Stations) > 0 && !gridGiven {
		return nil, false, usageError("-station requires -rows and -cols")
	}

	return opts, false, nil
}
