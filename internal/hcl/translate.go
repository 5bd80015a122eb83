package hcl

import (
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/adventofcode/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic
// model. Relative input paths are resolved against the declaring file.
func translatePuzzle(b *puzzleBlock, file string) (*config.Puzzle, error) {
	if b.Day == "" {
		return nil, fmt.Errorf("%s: puzzle block label must not be empty", file)
	}

	p := &config.Puzzle{
		Day:    b.Day,
		Source: file,
	}
	if b.Input != "" {
		p.Input = b.Input
		if !filepath.IsAbs(p.Input) {
			p.Input = filepath.Join(filepath.Dir(file), p.Input)
		}
	}

	if b.Expect != nil {
		part1, err := translateAnswer(b.Expect.Part1)
		if err != nil {
			return nil, fmt.Errorf("puzzle '%s', expect.part1: %w", b.Day, err)
		}
		part2, err := translateAnswer(b.Expect.Part2)
		if err != nil {
			return nil, fmt.Errorf("puzzle '%s', expect.part2: %w", b.Day, err)
		}
		p.Expect = &config.Expectation{Part1: part1, Part2: part2}
	}

	return p, nil
}

// translateAnswer evaluates an expected answer. A missing attribute yields
// nil. Numbers and numeric strings are accepted; the value must be a
// non-negative whole number.
func translateAnswer(expr hcl.Expression) (*big.Int, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
	}

	bf := num.AsBigFloat()
	if !bf.IsInt() {
		return nil, fmt.Errorf("expected a whole number, got %s", bf.Text('g', -1))
	}
	if bf.Sign() < 0 {
		return nil, fmt.Errorf("expected a non-negative number, got %s", bf.Text('f', 0))
	}
	n, _ := bf.Int(nil)
	return n, nil
}
