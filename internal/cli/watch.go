package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/balance/pkg/ports"
)

// ErrCheckFailed is returned when at least one exercise does not match its expectation.
var ErrCheckFailed = errors.New("check failed")

// CheckOptions contains the configuration for the check command.
type CheckOptions struct {
	Dir    string
	Watch  bool
	Stdout io.Writer
}

// RunCheck checks the exercises once, or keeps re-checking on every lesson change with Watch.
func RunCheck(env *Environment, opts CheckOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	loader, err := createLoader(env.lessonsDir(opts.Dir))
	if err != nil {
		return err
	}

	if !opts.Watch {
		return checkOnce(context.Background(), env, loader, opts.Stdout)
	}

	watchable, ok := loader.(ports.Watchable)
	if !ok {
		return fmt.Errorf("--watch needs a lessons directory")
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()
	return watchCheck(sigCtx, env, loader, watchable, opts.Stdout)
}

func checkOnce(ctx context.Context, env *Environment, loader ports.ExerciseLoader, w io.Writer) error {
	report, err := Check(ctx, loader, env.Engine)
	if err != nil {
		return err
	}
	if err := report.Write(w); err != nil {
		return err
	}
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%w: %d of %d exercises", ErrCheckFailed, n, len(report.Results))
	}
	return nil
}

// watchCheck re-runs the check after each change until ctx is cancelled.
// Failures are reported, never fatal, while watching.
func watchCheck(ctx context.Context, env *Environment, loader ports.ExerciseLoader, watchable ports.Watchable, w io.Writer) error {
	events, err := watchable.Watch(ctx)
	if err != nil {
		return err
	}

	env.Logger.Info("Starting Watcher")
	if err := checkOnce(ctx, env, loader, w); err != nil && !errors.Is(err, ErrCheckFailed) {
		env.Logger.Error("Check failed", "err", err)
	}
	printSystemMessage(w, "Waiting for changes...")

	for {
		select {
		case <-ctx.Done():
			env.Logger.Info("Stopping watcher")
			return nil
		case id, ok := <-events:
			if !ok {
				return nil
			}
			// Delay slightly to ensure file system is stable
			time.Sleep(100 * time.Millisecond)
			printSystemMessage(w, "Change detected in '%s'.", id)
			if err := checkOnce(ctx, env, loader, w); err != nil && !errors.Is(err, ErrCheckFailed) {
				env.Logger.Error("Check failed", "err", err)
			}
			printSystemMessage(w, "Waiting for changes...")
		}
	}
}
