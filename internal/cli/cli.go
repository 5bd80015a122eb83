package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/adventofcode/internal/app"
)

const (
	ExitSuccess        = 0
	ExitFailure        = 1
	ExitInvalidCommand = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("aoc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
aoc - Advent of Code puzzle runner.

Usage:
  aoc [options] DAY [INPUT_PATH]

Arguments:
  DAY
    Puzzle identifier, e.g. day1. Use -list to see all puzzles.
  INPUT_PATH
    Puzzle input file. May be omitted when the run configuration
    declares an input for DAY.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl run configuration file or directory.")
	cFlag := flagSet.String("c", "", "Path to an .hcl run configuration file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	timingFlag := flagSet.Bool("timing", false, "Print how long the solver took.")
	listFlag := flagSet.Bool("list", false, "List the available puzzles and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitInvalidCommand, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 2 {
		return nil, false, &ExitError{Code: ExitInvalidCommand, Message: fmt.Sprintf("too many arguments: %q", strings.Join(flagSet.Args()[2:], " "))}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	config, err := app.NewConfig(app.Config{
		Day:        flagSet.Arg(0),
		InputPath:  flagSet.Arg(1),
		ConfigPath: configPath,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Timing:     *timingFlag,
		List:       *listFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitInvalidCommand, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, app.ErrConfiguration) {
		return ExitInvalidCommand
	}
	return ExitFailure
}
