package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/balance/internal/presentation/graph"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/balance/pkg/runner"
)

// ErrRejected is returned by headless runs whose expression is invalid, so scripts get a non-zero exit.
var ErrRejected = errors.New("expression rejected")

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Expression string
	Exercise   string
	Dir        string
	Headless   bool
	JSON       bool
	Graph      bool

	Stdin  io.Reader
	Stdout io.Writer
}

// Execute handles the 'run' command logic, dispatching to graph or session mode.
func Execute(env *Environment, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	expression, err := resolveExpression(env, opts.Expression, opts.Exercise, opts.Dir)
	if err != nil {
		return err
	}
	opts.Expression = expression

	if opts.Graph {
		if opts.JSON {
			return fmt.Errorf("--graph and --json cannot be used together")
		}
		return RunGraph(context.Background(), env, opts)
	}
	return RunSession(env, opts)
}

// RunGraph validates the expression and prints its trace as a Mermaid flowchart.
func RunGraph(ctx context.Context, env *Environment, opts RunOptions) error {
	trace, err := env.Engine.Validate(ctx, opts.Expression)
	if err != nil {
		return err
	}
	fmt.Fprint(opts.Stdout, graph.GenerateMermaid(trace))
	if !trace.Valid() {
		return fmt.Errorf("%w: %s", ErrRejected, trace.Session.Reason)
	}
	return nil
}

// resolveExpression returns the sanitized expression from the argument or the named exercise.
func resolveExpression(env *Environment, expression, exercise, dir string) (string, error) {
	if exercise != "" {
		if expression != "" {
			return "", fmt.Errorf("an expression and --exercise cannot be used together")
		}
		ex, err := loadExercise(env, exercise, dir)
		if err != nil {
			return "", err
		}
		expression = ex.Input
	}
	clean, err := runner.SanitizeInputLimit(expression, env.Config.MaxInputSize)
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	return clean, nil
}

func loadExercise(env *Environment, id, dir string) (domain.Exercise, error) {
	loader, err := createLoader(env.lessonsDir(dir))
	if err != nil {
		return domain.Exercise{}, err
	}
	ex, err := loader.GetExercise(id)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("error loading exercise: %w", err)
	}
	return ex, nil
}
