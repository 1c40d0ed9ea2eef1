package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the ports.ExerciseLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[ExerciseMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[ExerciseMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a strict, read-only Loam repository at path and wraps it.
// Exercises are never written back.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[ExerciseMetadata](repo)), nil
}

// GetExercise retrieves an exercise by its normalized ID.
func (l *Loader) GetExercise(id string) (domain.Exercise, error) {
	all, err := l.load()
	if err != nil {
		return domain.Exercise{}, err
	}
	ex, ok := all[trimExtension(id)]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, id)
	}
	return ex, nil
}

// ListExercises lists all exercise IDs in the repository, sorted.
func (l *Loader) ListExercises() ([]string, error) {
	all, err := l.load()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// load lists every document for IDs and collisions, then reads each one in full.
func (l *Loader) load() (map[string]domain.Exercise, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	out := make(map[string]domain.Exercise, len(docs))

	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID

		// List carries metadata only; the body comes from Get.
		full, err := l.Repo.Get(ctx, doc.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", doc.ID, err)
		}

		ex, err := toExercise(id, full.Data, full.Content)
		if err != nil {
			return nil, fmt.Errorf("exercise %s: %w", doc.ID, err)
		}
		out[id] = ex
	}
	return out, nil
}

func toExercise(id string, meta ExerciseMetadata, content string) (domain.Exercise, error) {
	if meta.Expect == nil {
		return domain.Exercise{}, fmt.Errorf("missing 'expect'")
	}
	expect, ok := domain.ParseExpectation(fmt.Sprintf("%v", meta.Expect))
	if !ok {
		return domain.Exercise{}, fmt.Errorf("invalid 'expect' value %v (expected valid or invalid)", meta.Expect)
	}

	reason, ok := domain.ParseReason(meta.Reason)
	if !ok {
		return domain.Exercise{}, fmt.Errorf("unknown 'reason' %q", meta.Reason)
	}
	if reason != domain.ReasonNone && expect == domain.ExpectValid {
		return domain.Exercise{}, fmt.Errorf("'reason' only applies to invalid exercises")
	}

	title := meta.Title
	if title == "" {
		title = id
	}

	return domain.Exercise{
		ID:     id,
		Title:  title,
		Input:  meta.Input,
		Expect: expect,
		Reason: reason,
		Notes:  strings.TrimSpace(content),
	}, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
