package domain

import (
	"errors"
	"fmt"
)

// ErrInputLocked is returned when the input is changed after stepping has begun.
var ErrInputLocked = errors.New("input is locked")

// ErrExerciseNotFound is returned when an exercise ID cannot be found by a loader.
var ErrExerciseNotFound = errors.New("exercise not found")

// InputLockedError reports a SetInput call on a session that already started.
// It is a contract violation by the caller, never a validation outcome.
type InputLockedError struct {
	Cursor int
	Status Status
}

func (e *InputLockedError) Error() string {
	return fmt.Sprintf("input is locked: session is %s at cursor %d", e.Status, e.Cursor)
}

func (e *InputLockedError) Unwrap() error {
	return ErrInputLocked
}
