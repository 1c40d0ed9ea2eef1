package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/balance/internal/presentation/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotATerminal is returned by Play when stdout is not interactive.
var ErrNotATerminal = errors.New("play needs an interactive terminal; use 'balance run' instead")

// PlayOptions contains the configuration for the interactive stepper.
type PlayOptions struct {
	Expression string
	Exercise   string
	Dir        string
}

// Play runs the bubbletea stepper until the user quits.
func Play(env *Environment, opts PlayOptions) error {
	if !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}

	model, err := newStepper(context.Background(), env, opts)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("stepper failed: %w", err)
	}
	if m, ok := final.(tui.Stepper); ok {
		s := m.Session()
		env.Logger.Info("Stepper closed", "session_id", s.ID, "status", s.Status, "steps", s.Steps)
	}
	return nil
}

// newStepper builds the stepper model. A named exercise always preloads its session,
// even when its expression is empty.
func newStepper(ctx context.Context, env *Environment, opts PlayOptions) (tui.Stepper, error) {
	stepperOpts := []tui.StepperOption{tui.WithInputLimit(env.Config.MaxInputSize)}

	preload := opts.Expression != ""
	expression := opts.Expression
	if opts.Exercise != "" {
		if opts.Expression != "" {
			return tui.Stepper{}, fmt.Errorf("an expression and --exercise cannot be used together")
		}
		ex, err := loadExercise(env, opts.Exercise, opts.Dir)
		if err != nil {
			return tui.Stepper{}, err
		}
		preload = true
		expression = ex.Input

		title := ex.Title
		if title == "" {
			title = ex.ID
		}
		stepperOpts = append(stepperOpts, tui.WithTitle(title))
		if ex.Notes != "" {
			notes, err := tui.NewRenderer(env.Config.Theme, 72)(ex.Notes)
			if err != nil {
				env.Logger.Warn("Failed to render notes", "exercise", ex.ID, "err", err)
				notes = ex.Notes
			}
			stepperOpts = append(stepperOpts, tui.WithNotes(notes))
		}
	}

	if preload {
		clean, err := resolveExpression(env, expression, "", "")
		if err != nil {
			return tui.Stepper{}, err
		}
		s, err := env.Engine.Start(ctx, clean)
		if err != nil {
			return tui.Stepper{}, err
		}
		stepperOpts = append(stepperOpts, tui.WithSession(s))
	}

	return tui.NewStepper(ctx, env.Engine, stepperOpts...), nil
}
