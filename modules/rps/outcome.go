package rps

import (
	"fmt"

	"github.com/vk/adventofcode/internal/puzzle"
)

// Outcome is the result of a round from our point of view.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

// ParseOutcome decodes the desired outcome token: X lose, Y draw, Z win.
func ParseOutcome(c rune) (Outcome, error) {
	switch c {
	case 'X':
		return Lose, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	default:
		return 0, puzzle.InvalidSymbolf(string(c), "invalid outcome")
	}
}

// Points is the score an outcome earns: 0, 3 or 6.
func (o Outcome) Points() uint64 {
	return uint64(o) * 3
}

// MoveAgainst returns the move that produces o when played against theirs.
func (o Outcome) MoveAgainst(theirs Move) Move {
	switch o {
	case Win:
		return theirs.Beater()
	case Lose:
		return theirs.Beaten()
	default:
		return theirs
	}
}

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
