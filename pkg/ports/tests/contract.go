package tests

import (
	"errors"
	"testing"

	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/balance/pkg/ports"
)

// ExerciseLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.ExerciseLoader.
func ExerciseLoaderContractTest(t *testing.T, loader ports.ExerciseLoader, expected map[string]domain.Exercise) {
	t.Helper()

	// 1. Test GetExercise (Success)
	t.Run("GetExercise_Success", func(t *testing.T) {
		for id, want := range expected {
			got, err := loader.GetExercise(id)
			if err != nil {
				t.Fatalf("unexpected error getting exercise %s: %v", id, err)
			}
			if got.ID != want.ID || got.Input != want.Input || got.Expect != want.Expect || got.Reason != want.Reason {
				t.Errorf("exercise mismatch for %s. got %+v, want %+v", id, got, want)
			}
		}
	})

	// 2. Test GetExercise (NotFound)
	t.Run("GetExercise_NotFound", func(t *testing.T) {
		_, err := loader.GetExercise("non-existent-exercise")
		if err == nil {
			t.Fatal("expected error for non-existent exercise, got nil")
		}
		if !errors.Is(err, domain.ErrExerciseNotFound) {
			t.Errorf("expected ErrExerciseNotFound, got %v", err)
		}
	})

	// 3. Test ListExercises
	t.Run("ListExercises", func(t *testing.T) {
		ids, err := loader.ListExercises()
		if err != nil {
			t.Fatalf("unexpected error listing exercises: %v", err)
		}

		if len(ids) != len(expected) {
			t.Errorf("expected %d exercises, got %d", len(expected), len(ids))
		}

		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for id := range expected {
			if !lookup[id] {
				t.Errorf("exercise %s missing from list", id)
			}
		}

		for i := 1; i < len(ids); i++ {
			if ids[i-1] > ids[i] {
				t.Errorf("ids are not sorted: %v", ids)
				break
			}
		}
	})
}
