package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/balance/pkg/adapters/memory"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_BuiltinPasses(t *testing.T) {
	env := newTestEnv(t)

	report, err := Check(context.Background(), memory.Builtin(), env.Engine)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Results)
	assert.Zero(t, report.Failed())
}

func TestCheck_ReportsFailures(t *testing.T) {
	env := newTestEnv(t)
	loader, err := memory.NewLoader(
		domain.Exercise{ID: "a-ok", Input: "()", Expect: domain.ExpectValid},
		domain.Exercise{ID: "b-wrong", Input: "(]", Expect: domain.ExpectValid},
		domain.Exercise{ID: "c-reason", Input: ")(", Expect: domain.ExpectInvalid, Reason: domain.ReasonBracketMismatch},
	)
	require.NoError(t, err)

	report, err := Check(context.Background(), loader, env.Engine)
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].Passed())
	assert.False(t, report.Results[1].Passed())
	assert.False(t, report.Results[2].Passed(), "the reason must match when pinned")
	assert.Equal(t, 2, report.Failed())

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "PASS  a-ok")
	assert.Contains(t, out, "got invalid_rejected (bracket_mismatch)")
	assert.Contains(t, out, "want invalid (bracket_mismatch)")
	assert.Contains(t, out, "3 exercises, 2 failed")
}

func TestRunCheck_ExitsNonZeroOnFailure(t *testing.T) {
	env := newTestEnv(t)
	var buf bytes.Buffer

	require.NoError(t, RunCheck(env, CheckOptions{Stdout: &buf}))
	assert.Contains(t, buf.String(), "0 failed")

	err := RunCheck(env, CheckOptions{Watch: true, Stdout: &buf})
	assert.ErrorContains(t, err, "--watch needs a lessons directory")
}
