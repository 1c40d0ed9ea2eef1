package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/internal/presentation/tui"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/balance/pkg/runner"
)

// RunSession executes a single line-based session.
func RunSession(env *Environment, opts RunOptions) error {
	interactive := !opts.JSON && !opts.Headless && opts.Stdout == os.Stdout && isTerminal(os.Stdout)
	if interactive {
		tui.PrintBanner(opts.Stdout, balance.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	initial := env.Engine.NewSession(sigCtx)
	if opts.Expression != "" || opts.Headless {
		var err error
		initial, err = env.Engine.SetInput(sigCtx, initial, opts.Expression)
		if err != nil {
			return fmt.Errorf("failed to init session: %w", err)
		}
	}
	env.Logger.Info("Session Created", "session_id", initial.ID)

	r := runner.NewRunner(
		runner.WithEngine(env.Engine),
		runner.WithLogger(env.Logger),
		runner.WithHeadless(opts.Headless),
		runner.WithMaxInputSize(env.Config.MaxInputSize),
		runner.WithInitialSession(initial),
		runner.WithInputHandler(createHandler(env, opts, interactive)),
	)

	final, runErr := r.Run(sigCtx)
	if runErr != nil {
		if sig := sigCtx.Signal(); sig != nil && !opts.JSON {
			fmt.Fprintln(opts.Stdout)
			printSystemMessage(opts.Stdout, "Interrupted (%s).", sig)
		}
		return handleExecutionError(runErr)
	}

	if opts.Headless && final.Status == domain.StatusInvalidRejected {
		return fmt.Errorf("%w: %s", ErrRejected, final.Reason)
	}
	return nil
}

func createHandler(env *Environment, opts RunOptions, interactive bool) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(opts.Stdin, opts.Stdout,
			runner.WithJSONHandlerMaxInputSize(env.Config.MaxInputSize),
		)
	}
	renderer := runner.FormatSession
	if interactive {
		renderer = tui.RenderSession
	}
	return runner.NewTextHandler(opts.Stdin, opts.Stdout,
		runner.WithTextHandlerRenderer(renderer),
		runner.WithTextHandlerMaxInputSize(env.Config.MaxInputSize),
	)
}
