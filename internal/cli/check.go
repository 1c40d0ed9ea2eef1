package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/balance/pkg/ports"
)

// CheckResult is the outcome of one exercise.
type CheckResult struct {
	Exercise domain.Exercise
	Trace    *domain.Trace
	Err      error
}

// Passed reports whether the verdict matched the expectation.
func (r CheckResult) Passed() bool {
	return r.Err == nil && r.Trace != nil && r.Exercise.Check(r.Trace.Session)
}

// Report collects the results of a check run, in exercise ID order.
type Report struct {
	Results []CheckResult
}

// Failed counts the results that did not pass.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Write prints one line per exercise and a summary.
func (r Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range r.Results {
		mark := "PASS"
		if !res.Passed() {
			mark = "FAIL"
		}
		got := "-"
		switch {
		case res.Err != nil:
			got = res.Err.Error()
		case res.Trace != nil:
			got = string(res.Trace.Session.Status)
			if res.Trace.Session.Reason != "" {
				got += " (" + string(res.Trace.Session.Reason) + ")"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%q\twant %s\tgot %s\n", mark, res.Exercise.ID, res.Exercise.Input, expectation(res.Exercise), got)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d exercises, %d failed\n", len(r.Results), r.Failed())
	return err
}

func expectation(ex domain.Exercise) string {
	if ex.Reason != domain.ReasonNone {
		return fmt.Sprintf("%s (%s)", ex.Expect, ex.Reason)
	}
	return string(ex.Expect)
}

// Check validates every exercise of loader and compares the verdict with its expectation.
func Check(ctx context.Context, loader ports.ExerciseLoader, engine *balance.Engine) (Report, error) {
	ids, err := loader.ListExercises()
	if err != nil {
		return Report{}, fmt.Errorf("error listing exercises: %w", err)
	}

	report := Report{Results: make([]CheckResult, 0, len(ids))}
	for _, id := range ids {
		ex, err := loader.GetExercise(id)
		if err != nil {
			report.Results = append(report.Results, CheckResult{Exercise: domain.Exercise{ID: id}, Err: err})
			continue
		}
		trace, err := engine.Validate(ctx, ex.Input)
		report.Results = append(report.Results, CheckResult{Exercise: ex, Trace: trace, Err: err})
	}
	return report, nil
}
