package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/adventofcode/internal/puzzle"
)

// SolverFunc parses the full puzzle input and computes its answers.
type SolverFunc func(ctx context.Context, input string) (puzzle.Result, error)

// RegisteredSolver holds the compiled Go parts of a puzzle.
type RegisteredSolver struct {
	Title string
	Fn    SolverFunc
}

// RegisterSolver registers a solver under a puzzle identifier.
func (r *Registry) RegisterSolver(day string, solver *RegisteredSolver) {
	if day == "" {
		panic("solver identifier must not be empty")
	}
	if solver == nil || solver.Fn == nil {
		panic(fmt.Sprintf("solver '%s' has no function", day))
	}
	if _, exists := r.SolverRegistry[day]; exists {
		panic(fmt.Sprintf("solver with name '%s' already registered", day))
	}
	slog.Debug("Registering solver.", "day", day, "title", solver.Title)
	r.SolverRegistry[day] = solver
}
