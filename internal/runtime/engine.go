package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/balance/pkg/domain"
	"github.com/google/uuid"
)

// Engine is the core bracket validation state machine.
// It holds no per-session state: every call takes a Session snapshot and returns a new one.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithIDGenerator overrides how session IDs are minted.
func WithIDGenerator(gen func() string) EngineOption {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New creates the initial empty session.
func (e *Engine) New(ctx context.Context) *domain.Session {
	s := domain.NewSession(e.newID())
	e.logger.Debug("session created", "session_id", s.ID)
	return s
}

// Reset discards everything and returns the initial empty session.
// It never fails.
func (e *Engine) Reset(ctx context.Context, current *domain.Session) *domain.Session {
	next := e.New(ctx)
	if current != nil {
		e.logger.Debug("session reset", "session_id", current.ID, "new_session_id", next.ID, "cursor", current.Cursor)
	}
	e.emit(ctx, domain.HookReset, next)
	return next
}

// SetInput replaces the expression of a session that has not started yet.
// It returns *domain.InputLockedError once the first step was taken.
func (e *Engine) SetInput(ctx context.Context, current *domain.Session, text string) (*domain.Session, error) {
	if current == nil {
		current = e.New(ctx)
	}
	if current.Status != domain.StatusNotStarted || current.Cursor > 0 {
		e.logger.Debug("input rejected", "session_id", current.ID, "status", current.Status, "cursor", current.Cursor)
		return nil, &domain.InputLockedError{Cursor: current.Cursor, Status: current.Status}
	}

	next := current.Clone()
	next.Input = []rune(text)
	next.LastEvent = domain.Event{
		Kind:    domain.EventInput,
		Status:  domain.StatusNotStarted,
		Message: inputMessage(len(next.Input)),
	}
	return next, nil
}

// Restart rewinds a session to its first character, keeping the expression.
func (e *Engine) Restart(ctx context.Context, current *domain.Session) *domain.Session {
	if current == nil {
		return e.Reset(ctx, nil)
	}
	input := string(current.Input)
	next := e.Reset(ctx, current)
	// A fresh session is never locked.
	next, _ = e.SetInput(ctx, next, input)
	return next
}

func (e *Engine) emit(ctx context.Context, typ domain.HookType, s *domain.Session) {
	var hook func(context.Context, *domain.StepEvent)
	switch typ {
	case domain.HookStep:
		hook = e.hooks.OnStep
	case domain.HookVerdict:
		hook = e.hooks.OnVerdict
	case domain.HookReset:
		hook = e.hooks.OnReset
	}
	if hook == nil {
		return
	}
	hook(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{
			Timestamp: e.now(),
			Type:      typ,
			SessionID: s.ID,
		},
		Event:  s.LastEvent,
		Cursor: s.Cursor,
		Depth:  len(s.Stack),
	})
}
