package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/patrol/internal/config"
)

// EnvLogLevel seeds the -log-level default; a .env file may set it.
const EnvLogLevel = "PATROL_LOG_LEVEL"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Precedence, lowest first: defaults, PATROL_LOG_LEVEL, the -config file,
// flags given explicitly, the positional input path.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("patrol", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
patrol - guard patrol simulator and loop-obstruction search.

Prints the number of cells the guard visits before leaving the grid, then
the number of cells where one extra obstruction traps the guard in a loop.

Usage:
  patrol [options] [INPUT]

Arguments:
  INPUT
    Puzzle file, one grid row per line (default "input.txt").

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		def.LogLevel = lvl
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	inputFlag := flagSet.String("input", def.InputPath, "Puzzle input file.")
	iFlag := flagSet.String("i", def.InputPath, "Puzzle input file (shorthand).")
	workersFlag := flagSet.Int("workers", def.Workers, "Concurrent obstruction evaluators. 0 uses every CPU.")
	pruneFlag := flagSet.Bool("prune", def.PathPruning, "Only test obstruction cells on the guard's original path.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format: 'console' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one input path, got %d", flagSet.NArg())
	}

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag, cfg)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputFlag
		case "i":
			cfg.InputPath = *iFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "prune":
			cfg.PathPruning = *pruneFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		}
	})
	if flagSet.NArg() == 1 {
		cfg.InputPath = flagSet.Arg(0)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError("%v", err)
	}
	return &cfg, false, nil
}
