package puzzle

import "math/big"

// Result carries the answers of a single puzzle run. Part2 is nil for
// puzzles that only have one part.
type Result struct {
	Part1 *big.Int
	Part2 *big.Int
}

// HasPart2 reports whether the second answer is present.
func (r Result) HasPart2() bool {
	return r.Part2 != nil
}

// Uint is a shorthand for building an answer from a machine integer.
func Uint(n uint64) *big.Int {
	return new(big.Int).SetUint64(n)
}
