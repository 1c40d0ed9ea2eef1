package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/balance/pkg/domain"
)

// Loader implements ports.ExerciseLoader using an in-memory map.
type Loader struct {
	exercises map[string]domain.Exercise
}

// NewLoader creates a new Loader from domain objects.
// IDs must be unique and non-empty.
func NewLoader(exercises ...domain.Exercise) (*Loader, error) {
	data := make(map[string]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise missing ID")
		}
		if _, exists := data[ex.ID]; exists {
			return nil, fmt.Errorf("collision detected: exercise ID '%s' defined twice", ex.ID)
		}
		if ex.Expect == "" {
			return nil, fmt.Errorf("exercise %s: missing expectation", ex.ID)
		}
		data[ex.ID] = ex
	}
	return &Loader{exercises: data}, nil
}

// GetExercise retrieves an exercise by ID.
func (l *Loader) GetExercise(id string) (domain.Exercise, error) {
	ex, ok := l.exercises[id]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, id)
	}
	return ex, nil
}

// ListExercises returns all available exercise IDs.
func (l *Loader) ListExercises() ([]string, error) {
	keys := make([]string, 0, len(l.exercises))
	for k := range l.exercises {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
