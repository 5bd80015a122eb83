package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/vk/adventofcode/internal/ctxlog"
	"github.com/vk/adventofcode/internal/puzzle"
)

// Run executes the configured puzzle: it resolves the input file, dispatches
// to the registered solver, prints the answers and checks them against any
// recorded expectation.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.List {
		return a.list()
	}

	day := a.cfg.Day
	solver, err := a.registry.Lookup(day)
	if err != nil {
		return err
	}

	inputPath, err := a.resolveInput(day)
	if err != nil {
		return err
	}

	contents, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}
	a.logger.Debug("Input loaded.", "day", day, "path", inputPath, "bytes", len(contents))

	start := time.Now()
	result, err := a.registry.Solve(ctx, day, string(contents))
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", day, err)
	}
	a.logger.Info("Puzzle solved.", "day", day, "title", solver.Title, "duration", elapsed)

	fmt.Fprintf(a.outW, "Part 1: %s\n", result.Part1)
	if result.HasPart2() {
		fmt.Fprintf(a.outW, "Part 2: %s\n", result.Part2)
	}
	if a.cfg.Timing {
		fmt.Fprintf(a.outW, "It took %d us\n", elapsed.Microseconds())
	}

	return a.checkExpectations(day, result)
}

// resolveInput prefers the path given on the command line over the one
// declared in the run configuration.
func (a *App) resolveInput(day string) (string, error) {
	if a.cfg.InputPath != "" {
		return a.cfg.InputPath, nil
	}
	if p, ok := a.config.Puzzle(day); ok && p.Input != "" {
		a.logger.Debug("Using input from run configuration.", "day", day, "path", p.Input, "source", p.Source)
		return p.Input, nil
	}
	return "", fmt.Errorf("%w: no input file given for %s", ErrConfiguration, day)
}

func (a *App) checkExpectations(day string, result puzzle.Result) error {
	p, ok := a.config.Puzzle(day)
	if !ok || p.Expect == nil {
		return nil
	}

	var errs []error
	check := func(part int, got, want *big.Int) {
		if want == nil {
			return
		}
		if got == nil || got.Cmp(want) != 0 {
			errs = append(errs, fmt.Errorf("%w: %s part %d is %v, expected %s", ErrExpectationMismatch, day, part, got, want))
		}
	}
	check(1, result.Part1, p.Expect.Part1)
	check(2, result.Part2, p.Expect.Part2)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	a.logger.Info("Answers match expectations.", "day", day)
	return nil
}

// list prints every registered puzzle, with its configured input if any.
func (a *App) list() error {
	for _, day := range a.registry.Days() {
		solver, _ := a.registry.Lookup(day)
		line := fmt.Sprintf("%-6s %s", day, solver.Title)
		if p, ok := a.config.Puzzle(day); ok && p.Input != "" {
			line += fmt.Sprintf(" (%s)", p.Input)
		}
		fmt.Fprintln(a.outW, line)
	}
	return nil
}
