package runner

import (
	"context"

	"github.com/aretw0/balance/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents a session snapshot.
	Output(ctx context.Context, s *domain.Session) error

	// Input reads the next command line.
	// It returns io.EOF when the source is exhausted and ctx.Err() when cancelled.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (help, locked input, finished session).
	// This is distinct from session rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// SessionRenderer turns a snapshot into display text.
type SessionRenderer func(*domain.Session) string
