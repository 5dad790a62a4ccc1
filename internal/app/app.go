// Package app wires input loading, the patrol simulator and the obstruction
// search into one run, and reports the two answers.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/ctxlog"
	"github.com/katalvlaran/patrol/internal/input"
	"github.com/katalvlaran/patrol/obstruction"
	"github.com/katalvlaran/patrol/patrol"
)

// Answer holds the two puzzle results.
type Answer struct {
	// Visited is the number of distinct cells the guard covers before leaving.
	Visited int
	// LoopObstructions is the number of cells where one extra obstruction
	// traps the guard.
	LoopObstructions int
}

// Run reads cfg.InputPath, solves it and prints both answers to out, one
// per line.
func Run(ctx context.Context, out io.Writer, cfg *config.Config) error {
	logger := ctxlog.FromContext(ctx).With().Str("run_id", uuid.NewString()).Logger()
	ctx = ctxlog.WithLogger(ctx, logger)

	lines, err := input.ReadFile(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", cfg.InputPath).Int("rows", len(lines)).Msg("input loaded")

	ans, err := Solve(ctx, lines, cfg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%d\n%d\n", ans.Visited, ans.LoopObstructions); err != nil {
		return fmt.Errorf("app: write answers: %w", err)
	}
	return nil
}

// Solve builds the grid from lines and computes both answers.
func Solve(ctx context.Context, lines []string, cfg *config.Config) (Answer, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := grid.FromLines(lines)
	if err != nil {
		return Answer{}, fmt.Errorf("app: build grid: %w", err)
	}

	began := time.Now()
	walked, err := patrol.Walk(g)
	if err != nil {
		return Answer{}, fmt.Errorf("app: walk: %w", err)
	}
	logger.Info().
		Int("rows", g.Rows()).
		Int("cols", g.Cols()).
		Int("visited", walked.Visited).
		Int("steps", walked.Steps).
		Dur("elapsed", time.Since(began)).
		Msg("patrol walk finished")

	began = time.Now()
	loops, err := obstruction.Count(g,
		obstruction.WithContext(ctx),
		obstruction.WithWorkers(cfg.Workers),
		obstruction.WithPathPruning(cfg.PathPruning),
	)
	if err != nil {
		return Answer{}, fmt.Errorf("app: obstruction search: %w", err)
	}
	logger.Info().
		Int("loop_obstructions", loops).
		Dur("elapsed", time.Since(began)).
		Msg("obstruction search finished")

	return Answer{Visited: walked.Visited, LoopObstructions: loops}, nil
}
