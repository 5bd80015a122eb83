package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a configuration file. There is
// no remain body, so unknown blocks and attributes are rejected.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock is the HCL schema of `puzzle "<day>" { ... }`.
type puzzleBlock struct {
	Day    string       `hcl:"day,label"`
	Input  string       `hcl:"input,optional"`
	Expect *expectBlock `hcl:"expect,block"`
}

// expectBlock keeps the raw expressions so numbers of any size survive
// decoding; they are converted in translate.go.
type expectBlock struct {
	Part1 hcl.Expression `hcl:"part1,optional"`
	Part2 hcl.Expression `hcl:"part2,optional"`
}
