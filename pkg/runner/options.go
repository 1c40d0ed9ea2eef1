package runner

import (
	"log/slog"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/pkg/domain"
)

// DefaultInputBufferSize is the default number of lines to buffer for input handlers.
const DefaultInputBufferSize = 64

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithHeadless sets the runner to headless mode: step to the verdict without reading input.
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}

// WithMaxInputSize limits the expressions accepted by the set command.
func WithMaxInputSize(limit int) Option {
	return func(r *Runner) {
		r.MaxInputSize = limit
	}
}

// WithEngine configures the engine the Runner drives.
func WithEngine(engine *balance.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithInitialSession configures the session to start from.
// If not provided, the Runner starts from an empty session.
func WithInitialSession(s *domain.Session) Option {
	return func(r *Runner) {
		r.initial = s
	}
}
