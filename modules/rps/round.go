package rps

import (
	"unicode/utf8"

	"github.com/vk/adventofcode/internal/puzzle"
)

// Round is one line of the strategy guide.
type Round struct {
	Theirs Move
	Ours   Move
}

// Decoder turns a strategy guide line into a Round.
type Decoder func(line string) (Round, error)

// splitLine checks the "<theirs> <ours>" grammar: exactly three runes with
// a single space in the middle.
func splitLine(line string) (rune, rune, error) {
	if utf8.RuneCountInString(line) != 3 {
		return 0, 0, puzzle.Formatf(line, "expected '<theirs> <ours>'")
	}
	runes := []rune(line)
	if runes[1] != ' ' {
		return 0, 0, puzzle.Formatf(line, "expected '<theirs> <ours>'")
	}
	return runes[0], runes[2], nil
}

// ParseRound reads both columns as moves.
func ParseRound(line string) (Round, error) {
	a, b, err := splitLine(line)
	if err != nil {
		return Round{}, err
	}
	theirs, err := ParseMove(a)
	if err != nil {
		return Round{}, err
	}
	ours, err := ParseMove(b)
	if err != nil {
		return Round{}, err
	}
	return Round{Theirs: theirs, Ours: ours}, nil
}

// ParseRoundWithOutcome reads the second column as the outcome we need and
// picks our move accordingly.
func ParseRoundWithOutcome(line string) (Round, error) {
	a, b, err := splitLine(line)
	if err != nil {
		return Round{}, err
	}
	theirs, err := ParseMove(a)
	if err != nil {
		return Round{}, err
	}
	want, err := ParseOutcome(b)
	if err != nil {
		return Round{}, err
	}
	return Round{Theirs: theirs, Ours: want.MoveAgainst(theirs)}, nil
}

// Outcome is the result of the round for us.
func (r Round) Outcome() Outcome {
	return r.Ours.OutcomeAgainst(r.Theirs)
}

// Score is our score for the round.
func (r Round) Score() uint64 {
	return r.Outcome().Points() + r.Ours.Points()
}

// TotalScore decodes every line of text and sums the round scores. The first
// line that fails to decode aborts the sum.
func TotalScore(text string, decode Decoder) (uint64, error) {
	var total uint64
	for i, line := range puzzle.Lines(text) {
		round, err := decode(line)
		if err != nil {
			return 0, puzzle.AtLine(err, i+1)
		}
		total += round.Score()
	}
	return total, nil
}
