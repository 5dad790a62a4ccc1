package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/patrol/internal/app"
	"github.com/katalvlaran/patrol/internal/cli"
	"github.com/katalvlaran/patrol/internal/ctxlog"
)

// main is the entrypoint for the patrol binary.
func main() {
	// A missing .env is fine; it only seeds defaults.
	_ = godotenv.Load()

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
// Answers go to stdout, logs to stderr.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := ctxlog.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	return app.Run(ctxlog.WithLogger(ctx, logger), stdout, cfg)
}
