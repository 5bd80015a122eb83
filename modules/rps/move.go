package rps

import (
	"fmt"

	"github.com/vk/adventofcode/internal/puzzle"
)

// Move is one of Rock, Paper or Scissors.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every move in declaration order.
var Moves = [...]Move{Rock, Paper, Scissors}

// beats[m] is the move that m defeats.
var beats = [...]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// beatenBy[m] is the move that defeats m.
var beatenBy = [...]Move{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}

// ParseMove decodes a move token. Both the opponent column (A, B, C) and the
// literal reading of our column (X, Y, Z) are accepted.
func ParseMove(c rune) (Move, error) {
	switch c {
	case 'A', 'X':
		return Rock, nil
	case 'B', 'Y':
		return Paper, nil
	case 'C', 'Z':
		return Scissors, nil
	default:
		return 0, puzzle.InvalidSymbolf(string(c), "invalid move")
	}
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return beats[m] == other
}

// Beater returns the move that defeats m.
func (m Move) Beater() Move {
	return beatenBy[m]
}

// Beaten returns the move that m defeats.
func (m Move) Beaten() Move {
	return beats[m]
}

// OutcomeAgainst returns the result of playing m against theirs.
func (m Move) OutcomeAgainst(theirs Move) Outcome {
	switch {
	case m.Beats(theirs):
		return Win
	case theirs.Beats(m):
		return Lose
	default:
		return Draw
	}
}

// Points is the score a move earns on its own.
func (m Move) Points() uint64 {
	return uint64(m) + 1
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}
