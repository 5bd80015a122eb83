package app

import (
	"context"
	"io"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/adventofcode/internal/hcl"
	"github.com/vk/adventofcode/internal/puzzle"
	"github.com/vk/adventofcode/internal/registry"
)

func TestRun_PrintsBothParts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		day   string
		input string
		want  string
	}{
		{day: "day1", input: day1Example, want: "Part 1: 24000\nPart 2: 45000\n"},
		{day: "day2", input: day2Example, want: "Part 1: 15\nPart 2: 12\n"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.day, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			input := writeFile(t, t.TempDir(), "input.txt", tc.input)
			testApp, out, logs := setupAppTest(t, &Config{Day: tc.day, InputPath: input})

			// --- Act ---
			err := testApp.Run(context.Background())

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
			assert.Contains(t, logs.String(), "Puzzle solved.")
		})
	}
}

func TestRun_Timing(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "input.txt", day2Example)
	testApp, out, _ := setupAppTest(t, &Config{Day: "day2", InputPath: input, Timing: true})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Regexp(t, `(?m)^It took \d+ us$`, out.String())
}

// singlePart registers a puzzle with no second answer.
type singlePart struct{}

func (singlePart) Register(r *registry.Registry) {
	r.RegisterSolver("day9", &registry.RegisteredSolver{
		Title: "single",
		Fn: func(ctx context.Context, input string) (puzzle.Result, error) {
			return puzzle.Result{Part1: big.NewInt(7)}, nil
		},
	})
}

func TestRun_SinglePartOmitsSecondLine(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "input.txt", "")
	testApp, out, _ := setupAppTest(t, &Config{Day: "day9", InputPath: input}, singlePart{})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "Part 1: 7\n", out.String())
}

func TestRun_UnknownDay(t *testing.T) {
	t.Parallel()

	testApp, out, _ := setupAppTest(t, &Config{Day: "day99", InputPath: "/does/not/matter"})

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, puzzle.ErrUnknownSelector)
	assert.Empty(t, out.String(), "no answer may be printed for an unknown day")
}

func TestRun_PuzzleErrorPrintsNothing(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "input.txt", "A Y\nA  Y\n")
	testApp, out, _ := setupAppTest(t, &Config{Day: "day2", InputPath: input})

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, puzzle.ErrFormat)
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, out.String())
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, &Config{Day: "day1", InputPath: filepath.Join(t.TempDir(), "none.txt")})

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read file")
}

func TestRun_InputFromRunConfiguration(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "inputs/day1.txt", day1Example)
	cfgPath := writeFile(t, dir, "aoc.hcl", `
puzzle "day1" {
  input = "inputs/day1.txt"
  expect {
    part1 = 24000
    part2 = 45000
  }
}
`)
	testApp, out, logs := setupAppTest(t, &Config{Day: "day1", ConfigPath: cfgPath})

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 24000\nPart 2: 45000\n", out.String())
	assert.Contains(t, logs.String(), "Answers match expectations.")
}

func TestRun_CommandLineInputOverridesConfiguration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "aoc.hcl", `puzzle "day2" { input = "missing.txt" }`)
	input := writeFile(t, dir, "other.txt", day2Example)
	testApp, out, _ := setupAppTest(t, &Config{Day: "day2", InputPath: input, ConfigPath: cfgPath})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "Part 1: 15\nPart 2: 12\n", out.String())
}

func TestRun_ExpectationMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "day2.txt", day2Example)
	cfgPath := writeFile(t, dir, "aoc.hcl", `
puzzle "day2" {
  expect {
    part1 = 15
    part2 = 13
  }
}
`)
	testApp, out, _ := setupAppTest(t, &Config{Day: "day2", InputPath: input, ConfigPath: cfgPath})

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpectationMismatch)
	assert.Contains(t, err.Error(), "day2 part 2 is 12, expected 13")
	assert.NotContains(t, err.Error(), "part 1")
	assert.Equal(t, "Part 1: 15\nPart 2: 12\n", out.String(), "answers are still printed")
}

func TestRun_NoInputConfigured(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, &Config{Day: "day1"})

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "aoc.hcl", `puzzle "day2" { input = "/in/day2.txt" }`)
	testApp, out, _ := setupAppTest(t, &Config{List: true, ConfigPath: cfgPath})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "day1   Calorie Counting\nday2   Rock Paper Scissors (/in/day2.txt)\n", out.String())
}

func TestNewApp_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), "aoc.hcl", `puzzle "day1" {`)

	_, err := NewApp(io.Discard, io.Discard, &Config{Day: "day1", ConfigPath: cfgPath}, nil)
	require.NoError(t, err, "a nil loader ignores the config path")

	_, err = NewApp(io.Discard, io.Discard, &Config{Day: "day1", ConfigPath: cfgPath}, hcl.NewLoader())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	t.Parallel()

	testApp, _, _ := setupAppTest(t, &Config{Day: "day1"})

	assert.Equal(t, []string{"day1", "day2"}, testApp.Registry().Days())
}
