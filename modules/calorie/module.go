// Package calorie solves the inventory puzzle (day1): blank-line separated
// groups of item weights, reduced to the heaviest group and the combined
// weight of the three heaviest groups.
package calorie

import (
	"context"

	"github.com/vk/adventofcode/internal/ctxlog"
	"github.com/vk/adventofcode/internal/puzzle"
	"github.com/vk/adventofcode/internal/registry"
)

// Day is the identifier this module registers under.
const Day = "day1"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Solve parses input and computes both answers.
func Solve(ctx context.Context, input string) (puzzle.Result, error) {
	logger := ctxlog.FromContext(ctx)

	list := Parse(input)
	logger.Debug("Parsed inventories.", "count", len(list))

	part1, err := TotalMax(list)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.Result{
		Part1: part1,
		Part2: Top3Sum(list),
	}, nil
}

// Register registers the solver with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver(Day, &registry.RegisteredSolver{
		Title: "Calorie Counting",
		Fn:    Solve,
	})
}
