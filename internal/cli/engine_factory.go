package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/internal/config"
	"github.com/aretw0/balance/pkg/adapters/loam"
	"github.com/aretw0/balance/pkg/adapters/memory"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/balance/pkg/observability"
	"github.com/aretw0/balance/pkg/ports"
)

// Environment bundles what every command needs: configuration, logger, metrics and engine.
type Environment struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics
	Engine  *balance.Engine
}

// NewEnvironment wires the engine with the CLI conventions: metrics always, debug hooks on --debug.
func NewEnvironment(cfg config.Config, debug bool) (*Environment, error) {
	logger, err := createLogger(debug, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error configuring logger: %w", err)
	}

	metrics := observability.NewMetrics()
	hooks := []domain.LifecycleHooks{metrics.Hooks()}
	if debug {
		hooks = append(hooks, createDebugHooks(logger))
	}

	engine := balance.New(
		balance.WithName("balance-cli"),
		balance.WithLogger(logger),
		balance.WithLifecycleHooks(observability.Combine(hooks...)),
	)

	return &Environment{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Engine:  engine,
	}, nil
}

// Close flushes the metrics textfile when one is configured.
func (env *Environment) Close() error {
	if env.Config.MetricsFile == "" {
		return nil
	}
	if err := env.Metrics.WriteTextfile(env.Config.MetricsFile); err != nil {
		return err
	}
	env.Logger.Debug("metrics written", "path", env.Config.MetricsFile)
	return nil
}

// createLoader opens the lessons directory, or the built-in set when dir is empty.
func createLoader(dir string) (ports.ExerciseLoader, error) {
	if dir == "" {
		return memory.Builtin(), nil
	}
	loader, err := loam.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("error opening lessons at %s: %w", dir, err)
	}
	return loader, nil
}

// lessonsDir picks the flag value over the configured directory.
func (env *Environment) lessonsDir(flag string) string {
	if flag != "" {
		return flag
	}
	return env.Config.LessonsDir
}
