package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/adventofcode/internal/config"
	"github.com/vk/adventofcode/internal/ctxlog"
	"github.com/vk/adventofcode/internal/registry"
)

var (
	// ErrConfiguration marks failures caused by the invocation or the run
	// configuration rather than by the puzzle input.
	ErrConfiguration = errors.New("configuration error")
	// ErrExpectationMismatch is returned when an answer differs from the one
	// recorded in the run configuration.
	ErrExpectationMismatch = errors.New("answer does not match expectation")
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	registry *registry.Registry
	config   *config.Model
}

// NewApp is the constructor for the main application. Answers are written to
// outW and logs to logW. When no modules are given the compiled-in puzzles
// are registered. A nil loader or an empty ConfigPath leaves the run
// configuration empty.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "days", reg.Days())

	cfgModel := config.NewModel()
	if appConfig.ConfigPath != "" && loader != nil {
		var err error
		cfgModel, err = loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load configuration: %w", ErrConfiguration, err)
		}
		logger.Debug("Run configuration loaded.", "puzzles", cfgModel.Days())
	}

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      appConfig,
		registry: reg,
		config:   cfgModel,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
