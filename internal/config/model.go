package config

import (
	"math/big"
	"slices"
)

// Model is the unified representation of the run configuration.
type Model struct {
	Puzzles map[string]*Puzzle
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Puzzles: make(map[string]*Puzzle)}
}

// Puzzle is the format-agnostic representation of a `puzzle` block.
type Puzzle struct {
	Day string
	// Input is the puzzle input path, already resolved against the directory
	// of the file that declared it. Empty when not configured.
	Input string
	// Expect is nil when no answers are recorded.
	Expect *Expectation
	// Source is the file the block was read from.
	Source string
}

// Expectation holds known-good answers. A nil part is not checked.
type Expectation struct {
	Part1 *big.Int
	Part2 *big.Int
}

// Puzzle returns the configuration for day, if any. It is safe to call on a
// nil model.
func (m *Model) Puzzle(day string) (*Puzzle, bool) {
	if m == nil {
		return nil, false
	}
	p, ok := m.Puzzles[day]
	return p, ok
}

// Days returns the configured identifiers in sorted order.
func (m *Model) Days() []string {
	if m == nil {
		return nil
	}
	days := make([]string, 0, len(m.Puzzles))
	for day := range m.Puzzles {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
