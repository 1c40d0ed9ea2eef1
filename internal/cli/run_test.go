package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/balance/internal/dto"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_HeadlessValid(t *testing.T) {
	var out bytes.Buffer
	err := Execute(newTestEnv(t), RunOptions{Expression: "{[()]}", Headless: true, Stdout: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "expression is valid (stack empty at end)")
	assert.NotContains(t, out.String(), "> ", "headless runs never prompt")
}

func TestExecute_HeadlessRejected(t *testing.T) {
	var out bytes.Buffer
	err := Execute(newTestEnv(t), RunOptions{Expression: "{[(])}", Headless: true, Stdout: &out})

	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorContains(t, err, string(domain.ReasonBracketMismatch))
}

func TestExecute_Exercise(t *testing.T) {
	var out bytes.Buffer
	err := Execute(newTestEnv(t), RunOptions{Exercise: "02-nested", Headless: true, JSON: true, Stdout: &out})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var first dto.Snapshot
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "{[()]}", first.Input)

	err = Execute(newTestEnv(t), RunOptions{Exercise: "missing", Headless: true, Stdout: &out})
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)

	err = Execute(newTestEnv(t), RunOptions{Expression: "()", Exercise: "02-nested", Stdout: &out})
	assert.Error(t, err)
}

func TestExecute_ScriptedJSON(t *testing.T) {
	var out bytes.Buffer
	err := Execute(newTestEnv(t), RunOptions{
		JSON:   true,
		Stdin:  strings.NewReader("\"set ()\"\nn\nn\nn\nn\n"),
		Stdout: &out,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// initial, set, push, pop, verdict, then a system line for the extra step
	require.Len(t, lines, 6)

	var verdict dto.Snapshot
	require.NoError(t, json.Unmarshal([]byte(lines[4]), &verdict))
	assert.Equal(t, domain.StatusValidAccepted, verdict.Status)
	assert.Equal(t, domain.EventVerdict, verdict.Event.Kind)
	assert.JSONEq(t, `{"system":"session finished; use reset or restart"}`, lines[5])
}

func TestExecute_Graph(t *testing.T) {
	var out bytes.Buffer
	err := Execute(newTestEnv(t), RunOptions{Expression: "()", Graph: true, Stdout: &out})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "graph LR"))

	err = Execute(newTestEnv(t), RunOptions{Expression: ")", Graph: true, Stdout: &out})
	assert.ErrorIs(t, err, ErrRejected)

	err = Execute(newTestEnv(t), RunOptions{Expression: "()", Graph: true, JSON: true, Stdout: &out})
	assert.Error(t, err)
}

func TestExecute_RejectsOversizedExpression(t *testing.T) {
	env := newTestEnv(t)
	env.Config.MaxInputSize = 2

	err := Execute(env, RunOptions{Expression: "(())", Headless: true, Stdout: &bytes.Buffer{}})
	assert.ErrorContains(t, err, "invalid expression")
}
