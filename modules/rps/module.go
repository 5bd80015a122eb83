// Package rps solves the rock-paper-scissors strategy guide puzzle (day2).
//
// Every input line is "<theirs> <ours>". Part one reads the second column
// as our move; part two reads it as the outcome we must reach (X lose,
// Y draw, Z win) and derives our move from it.
package rps

import (
	"context"

	"github.com/vk/adventofcode/internal/ctxlog"
	"github.com/vk/adventofcode/internal/puzzle"
	"github.com/vk/adventofcode/internal/registry"
)

// Day is the identifier this module registers under.
const Day = "day2"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Solve scores the strategy guide under both readings.
func Solve(ctx context.Context, input string) (puzzle.Result, error) {
	logger := ctxlog.FromContext(ctx)

	part1, err := TotalScore(input, ParseRound)
	if err != nil {
		return puzzle.Result{}, err
	}
	part2, err := TotalScore(input, ParseRoundWithOutcome)
	if err != nil {
		return puzzle.Result{}, err
	}
	logger.Debug("Scored strategy guide.", "rounds", len(puzzle.Lines(input)))

	return puzzle.Result{
		Part1: puzzle.Uint(part1),
		Part2: puzzle.Uint(part2),
	}, nil
}

// Register registers the solver with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver(Day, &registry.RegisteredSolver{
		Title: "Rock Paper Scissors",
		Fn:    Solve,
	})
}
