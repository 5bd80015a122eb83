package registry

import (
	"context"
	"slices"

	"github.com/vk/adventofcode/internal/ctxlog"
	"github.com/vk/adventofcode/internal/puzzle"
)

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the solvers known to a single application instance.
type Registry struct {
	SolverRegistry map[string]*RegisteredSolver
}

// New creates and initializes a new Registry instance.
func New(modules ...Module) *Registry {
	r := &Registry{
		SolverRegistry: make(map[string]*RegisteredSolver),
	}
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}

// Lookup returns the solver registered under day.
func (r *Registry) Lookup(day string) (*RegisteredSolver, error) {
	solver, ok := r.SolverRegistry[day]
	if !ok {
		return nil, puzzle.UnknownSelector(day)
	}
	return solver, nil
}

// Days returns the registered identifiers in sorted order.
func (r *Registry) Days() []string {
	days := make([]string, 0, len(r.SolverRegistry))
	for day := range r.SolverRegistry {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}

// Solve runs the solver registered under day against input. An unknown day
// is reported as puzzle.ErrUnknownSelector; there is no fallback solver.
func (r *Registry) Solve(ctx context.Context, day, input string) (puzzle.Result, error) {
	logger := ctxlog.FromContext(ctx)

	solver, err := r.Lookup(day)
	if err != nil {
		logger.Debug("No solver registered for day.", "day", day, "known", r.Days())
		return puzzle.Result{}, err
	}

	logger.Debug("Dispatching puzzle.", "day", day, "title", solver.Title, "input_bytes", len(input))
	return solver.Fn(ctx, input)
}
