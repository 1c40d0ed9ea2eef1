/*
Package runner implements the host loop that drives a Balance session.

It acts as the bridge between the pure engine and the outside world: the
Runner renders each snapshot through a pluggable IOHandler, reads a command,
and applies it as a Step, Reset, Restart or SetInput call.

# Key Components

  - Runner: the loop. In headless mode it steps to the verdict without reading input.
  - IOHandler: decouples how sessions are shown and commands are read.
  - TextHandler: interactive CLI usage with a "> " prompt.
  - JSONHandler: one JSON object per snapshot (NDJSON) for scripts and tools.

# Usage

	r := runner.NewRunner(
		runner.WithEngine(balance.New()),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	final, err := r.Run(ctx)
*/
package runner
