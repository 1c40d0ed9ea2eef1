package tui

import (
	"context"
	"testing"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/pkg/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter   = tea.KeyMsg{Type: tea.KeyEnter}
	space   = tea.KeyMsg{Type: tea.KeySpace}
	tab     = tea.KeyMsg{Type: tea.KeyTab}
	ctrlR   = tea.KeyMsg{Type: tea.KeyCtrlR}
	ctrlC   = tea.KeyMsg{Type: tea.KeyCtrlC}
	resize  = tea.WindowSizeMsg{Width: 80, Height: 24}
	nextKey = runes("n")
)

func press(t *testing.T, m Stepper, msgs ...tea.Msg) Stepper {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Stepper)
		require.True(t, ok, "Update must return a Stepper")
	}
	return m
}

func newStepper(t *testing.T, expression string) Stepper {
	t.Helper()
	ctx := context.Background()
	engine := balance.New()
	s, err := engine.Start(ctx, expression)
	require.NoError(t, err)
	return NewStepper(ctx, engine, WithSession(s))
}

func TestStepper_TypesAndStepsExpression(t *testing.T) {
	m := NewStepper(context.Background(), balance.New())
	require.True(t, m.input.Focused(), "empty session starts in edit mode")

	m = press(t, m, resize, runes("{[()]}"), enter)
	assert.False(t, m.input.Focused())
	assert.Equal(t, "{[()]}", string(m.Session().Input))

	m = press(t, m, nextKey, space, enter)
	assert.Equal(t, "{[(", string(m.Session().Stack))

	m = press(t, m, nextKey, nextKey, nextKey, nextKey)
	assert.Equal(t, domain.StatusValidAccepted, m.Session().Status)
	assert.Contains(t, m.View(), "expression is valid (stack empty at end)")
}

func TestStepper_GivenEmptySessionStartsStepping(t *testing.T) {
	m := newStepper(t, "")
	require.False(t, m.input.Focused())

	m = press(t, m, nextKey)
	assert.Equal(t, domain.StatusValidAccepted, m.Session().Status)
}

func TestStepper_StepDisabledOnceTerminal(t *testing.T) {
	m := newStepper(t, ")(")

	m = press(t, m, nextKey)
	final := m.Session()
	require.Equal(t, domain.ReasonEmptyStackUnderflow, final.Reason)

	m = press(t, m, nextKey)
	assert.Same(t, final, m.Session())
	assert.Contains(t, m.flash, "session finished")
}

func TestStepper_InputLockedAfterFirstStep(t *testing.T) {
	m := newStepper(t, "(]")

	m = press(t, m, nextKey, tab)
	assert.False(t, m.input.Focused())
	assert.Contains(t, m.flash, "locked")
}

func TestStepper_ResetClearsInput(t *testing.T) {
	m := newStepper(t, "((")
	m = press(t, m, nextKey, runes("r"))

	assert.Equal(t, domain.StatusNotStarted, m.Session().Status)
	assert.Empty(t, m.Session().Input)
	assert.True(t, m.input.Focused())
	assert.Empty(t, m.input.Value())

	m = press(t, m, runes("[]"), enter, nextKey, nextKey, nextKey)
	assert.Equal(t, domain.StatusValidAccepted, m.Session().Status)
}

func TestStepper_RestartKeepsInput(t *testing.T) {
	m := newStepper(t, "(()")
	m = press(t, m, nextKey, nextKey, ctrlR)

	assert.Equal(t, 0, m.Session().Cursor)
	assert.Empty(t, m.Session().Stack)
	assert.Equal(t, "(()", string(m.Session().Input))
}

func TestStepper_ViewShowsStackChange(t *testing.T) {
	m := newStepper(t, "[]")
	assert.NotContains(t, m.View(), "Change", "nothing moved yet")

	m = press(t, m, nextKey)
	assert.Contains(t, m.View(), "+ [")

	m = press(t, m, nextKey)
	assert.Contains(t, m.View(), "- [")

	m = press(t, m, runes("r"))
	assert.NotContains(t, m.View(), "Change", "reset starts over")
}

func TestStepper_ViewShowsEmptyStack(t *testing.T) {
	m := newStepper(t, "a")
	assert.Contains(t, m.View(), EmptyStackText)

	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
}

func TestStepper_Quit(t *testing.T) {
	m := newStepper(t, "()")
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())

	// ctrl+c quits even while editing
	editing := NewStepper(context.Background(), balance.New())
	_, cmd = editing.Update(ctrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
