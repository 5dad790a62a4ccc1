package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/patrol/internal/ctxlog"
	"github.com/katalvlaran/patrol/internal/input"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved configuration for one run.
type Config struct {
	// InputPath is the puzzle file to read.
	InputPath string
	// Workers is the obstruction search concurrency; 0 uses every CPU.
	Workers int
	// PathPruning restricts search candidates to the walked path.
	PathPruning bool
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		InputPath:   input.DefaultFileName,
		Workers:     1,
		PathPruning: false,
		LogLevel:    "info",
		LogFormat:   ctxlog.FormatConsole,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalid, c.Workers)
	}
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != ctxlog.FormatConsole && c.LogFormat != ctxlog.FormatJSON {
		return fmt.Errorf("%w: log format must be %q or %q, got %q",
			ErrInvalid, ctxlog.FormatConsole, ctxlog.FormatJSON, c.LogFormat)
	}
	return nil
}

// hclFile is the decoding target for a config file. Pointers tell an
// omitted attribute apart from a zero value.
type hclFile struct {
	Input       *string `hcl:"input,optional"`
	Workers     *int    `hcl:"workers,optional"`
	PathPruning *bool   `hcl:"path_pruning,optional"`
	LogLevel    *string `hcl:"log_level,optional"`
	LogFormat   *string `hcl:"log_format,optional"`
}

// evalContext exposes the variables config expressions may reference.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// Load parses the HCL file at path and applies it over base.
func Load(path string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}
	return decode(f, path, base)
}

// Parse is Load for in-memory source; filename is used in diagnostics.
func Parse(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}
	return decode(f, filename, base)
}

func decode(f *hcl.File, filename string, base Config) (Config, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &raw); diags.HasErrors() {
		return base, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := base
	if raw.Input != nil {
		cfg.InputPath = *raw.Input
	}
	if raw.Workers != nil {
		cfg.Workers = *raw.Workers
	}
	if raw.PathPruning != nil {
		cfg.PathPruning = *raw.PathPruning
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.LogFormat != nil {
		cfg.LogFormat = *raw.LogFormat
	}
	return cfg, nil
}
