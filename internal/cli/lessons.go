package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/balance/pkg/ports"
)

// Lessons lists the exercises of loader. With render set, each exercise's notes follow its row.
func Lessons(w io.Writer, loader ports.ExerciseLoader, render func(string) (string, error)) error {
	ids, err := loader.ListExercises()
	if err != nil {
		return fmt.Errorf("error listing exercises: %w", err)
	}
	if len(ids) == 0 {
		printSystemMessage(w, "No exercises found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tINPUT\tEXPECT")
	for _, id := range ids {
		ex, err := loader.GetExercise(id)
		if err != nil {
			return fmt.Errorf("error loading exercise %s: %w", id, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%q\t%s\n", ex.ID, ex.Title, ex.Input, expectation(ex))

		if render != nil && strings.TrimSpace(ex.Notes) != "" {
			if err := tw.Flush(); err != nil {
				return err
			}
			notes, err := render(ex.Notes)
			if err != nil {
				notes = ex.Notes
			}
			fmt.Fprintln(w, strings.TrimRight(notes, "\n"))
		}
	}
	return tw.Flush()
}

// ListLessons lists the exercises of the configured or given directory.
func ListLessons(env *Environment, dir string, w io.Writer, render func(string) (string, error)) error {
	loader, err := createLoader(env.lessonsDir(dir))
	if err != nil {
		return err
	}
	return Lessons(w, loader, render)
}
