package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/pkg/domain"
)

// Runner handles the execution loop of the Balance engine using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Headless steps to the verdict without reading commands.
	Headless bool

	// MaxInputSize limits set expressions. Zero uses the environment default.
	MaxInputSize int

	engine  *balance.Engine
	initial *domain.Session
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the loop until the user quits, the input ends, or ctx is cancelled.
// In headless mode it returns as soon as the session is terminal.
// The last session is returned even on error.
func (r *Runner) Run(ctx context.Context) (*domain.Session, error) {
	engine := r.engine
	if engine == nil {
		engine = balance.New(balance.WithLogger(r.Logger))
	}
	handler := r.resolveHandler()
	if s, ok := handler.(interface{ Stop() }); ok {
		defer s.Stop()
	}

	session := r.initial
	if session == nil {
		session = engine.NewSession(ctx)
	}
	if err := handler.Output(ctx, session); err != nil {
		return session, fmt.Errorf("output error: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return session, err
		}

		if r.Headless {
			if session.Terminal() {
				return session, nil
			}
			session, _ = engine.Step(ctx, session)
			if err := handler.Output(ctx, session); err != nil {
				return session, fmt.Errorf("output error: %w", err)
			}
			continue
		}

		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed", "session_id", session.ID)
				return session, nil
			}
			if ctx.Err() != nil {
				r.Logger.Debug("runner interrupted", "session_id", session.ID, "err", ctx.Err())
				return session, ctx.Err()
			}
			return session, fmt.Errorf("input error: %w", err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			if err := handler.SystemOutput(ctx, fmt.Sprintf("%v; %s", err, Usage)); err != nil {
				return session, fmt.Errorf("output error: %w", err)
			}
			continue
		}
		if cmd.Kind == CommandQuit {
			return session, nil
		}

		next, msg, err := r.apply(ctx, engine, session, cmd)
		if err != nil {
			return session, err
		}
		if msg != "" {
			if err := handler.SystemOutput(ctx, msg); err != nil {
				return session, fmt.Errorf("output error: %w", err)
			}
		}
		if next != session {
			session = next
			if err := handler.Output(ctx, session); err != nil {
				return session, fmt.Errorf("output error: %w", err)
			}
		}
	}
}

// apply runs one command. It returns the same session pointer when nothing changed,
// and a message for the user when the command could not be applied.
func (r *Runner) apply(ctx context.Context, engine *balance.Engine, s *domain.Session, cmd Command) (*domain.Session, string, error) {
	r.Logger.Debug("command", "session_id", s.ID, "command", cmd.Kind)

	switch cmd.Kind {
	case CommandNext:
		if s.Terminal() {
			return s, "session finished; use reset or restart", nil
		}
		next, _ := engine.Step(ctx, s)
		return next, "", nil

	case CommandReset:
		return engine.Reset(ctx, s), "", nil

	case CommandRestart:
		return engine.Restart(ctx, s), "", nil

	case CommandSet:
		text, err := SanitizeInputLimit(cmd.Arg, r.MaxInputSize)
		if err != nil {
			return s, fmt.Sprintf("expression rejected: %v", err), nil
		}
		next, err := engine.SetInput(ctx, s, text)
		var locked *domain.InputLockedError
		if errors.As(err, &locked) {
			return s, fmt.Sprintf("%v; reset first", err), nil
		}
		if err != nil {
			return s, "", fmt.Errorf("set input: %w", err)
		}
		return next, "", nil

	case CommandHelp:
		return s, Usage, nil
	}
	return s, "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
}

// resolveHandler ensures a valid IOHandler is set.
// Built-in handlers without their own line limit inherit MaxInputSize.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		// Memoize to prevent creating new pumps on subsequent Run() calls
		r.Handler = NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerMaxInputSize(r.MaxInputSize))
	}
	switch h := r.Handler.(type) {
	case *TextHandler:
		if h.MaxInputSize <= 0 {
			h.MaxInputSize = r.MaxInputSize
		}
	case *JSONHandler:
		if h.MaxInputSize <= 0 {
			h.MaxInputSize = r.MaxInputSize
		}
	}
	return r.Handler
}
