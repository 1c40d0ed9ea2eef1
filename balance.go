package balance

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/balance/internal/runtime"
	"github.com/aretw0/balance/pkg/domain"
)

// Engine is the high-level entry point for the Balance library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine in logs (e.g. the exercise set it serves).
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// WithSessionIDs overrides how session IDs are generated. Mostly useful in tests.
func WithSessionIDs(gen func() string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithIDGenerator(gen))
	}
}

// New initializes a new Balance Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("engine", eng.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	runtimeOpts = append(runtimeOpts, eng.runtimeOpts...)

	eng.runtime = runtime.NewEngine(runtimeOpts...)
	return eng
}

// NewSession returns the initial empty session.
func (e *Engine) NewSession(ctx context.Context) *domain.Session {
	return e.runtime.New(ctx)
}

// Start creates a fresh session holding text, ready for its first step.
func (e *Engine) Start(ctx context.Context, text string) (*domain.Session, error) {
	return e.runtime.SetInput(ctx, e.runtime.New(ctx), text)
}

// Step processes the next character (or emits the verdict) and returns the new snapshot.
func (e *Engine) Step(ctx context.Context, s *domain.Session) (*domain.Session, domain.Event) {
	return e.runtime.Step(ctx, s)
}

// Reset returns the initial empty session, discarding s entirely.
func (e *Engine) Reset(ctx context.Context, s *domain.Session) *domain.Session {
	return e.runtime.Reset(ctx, s)
}

// SetInput changes the expression. It fails with *domain.InputLockedError once stepping began.
func (e *Engine) SetInput(ctx context.Context, s *domain.Session, text string) (*domain.Session, error) {
	return e.runtime.SetInput(ctx, s, text)
}

// Restart rewinds s to its first character, keeping the expression.
func (e *Engine) Restart(ctx context.Context, s *domain.Session) *domain.Session {
	return e.runtime.Restart(ctx, s)
}

// Run steps s until it is terminal.
func (e *Engine) Run(ctx context.Context, s *domain.Session) (*domain.Session, []domain.Event) {
	return e.runtime.Run(ctx, s)
}

// Validate runs text to completion and returns the full trace.
func (e *Engine) Validate(ctx context.Context, text string) (*domain.Trace, error) {
	s, err := e.Start(ctx, text)
	if err != nil {
		return nil, err
	}
	final, events := e.runtime.Run(ctx, s)
	return &domain.Trace{Session: final, Events: events}, nil
}
