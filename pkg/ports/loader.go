package ports

import (
	"context"

	"github.com/aretw0/balance/pkg/domain"
)

// ExerciseLoader defines how hosts retrieve exercise definitions.
// This allows the content source (Loam, Memory) to be decoupled from the CLI and TUI.
type ExerciseLoader interface {
	// GetExercise retrieves an exercise by ID.
	// It returns an error wrapping domain.ErrExerciseNotFound if the ID is unknown.
	GetExercise(id string) (domain.Exercise, error)

	// ListExercises returns all exercise IDs in a deterministic order.
	ListExercises() ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// This is typically used to reload the exercise list while the stepper is open.
type Watchable interface {
	// Watch returns a channel that receives the ID of every changed exercise.
	Watch(ctx context.Context) (<-chan string, error)
}
