package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepped(t *testing.T, expression string, steps int) *domain.Session {
	t.Helper()
	ctx := context.Background()
	engine := balance.New()
	s, err := engine.Start(ctx, expression)
	require.NoError(t, err)
	for range steps {
		s, _ = engine.Step(ctx, s)
	}
	return s
}

func TestStackView_TopFirst(t *testing.T) {
	view := StackView(stepped(t, "{[(", 3))

	paren := strings.Index(view, "(")
	bracket := strings.Index(view, "[")
	brace := strings.Index(view, "{")
	require.True(t, paren >= 0 && bracket >= 0 && brace >= 0, view)
	assert.Less(t, paren, bracket)
	assert.Less(t, bracket, brace)
	assert.Contains(t, view, "<- top")
}

func TestStackChangeView(t *testing.T) {
	before := stepped(t, "{(}", 1)
	pushed := stepped(t, "{(}", 2)
	assert.Contains(t, StackChangeView(domain.Diff(before, pushed)), "+ (")

	before = stepped(t, "()", 1)
	popped := stepped(t, "()", 2)
	assert.Contains(t, StackChangeView(domain.Diff(before, popped)), "- (")

	ignored := stepped(t, "a", 1)
	assert.Empty(t, StackChangeView(domain.Diff(stepped(t, "a", 0), ignored)), "non-bracket steps leave the stack alone")
	assert.Empty(t, StackChangeView(nil))
}

func TestStackView_Empty(t *testing.T) {
	assert.Contains(t, StackView(stepped(t, "", 0)), EmptyStackText)
}

func TestFamilyColor(t *testing.T) {
	assert.Equal(t, ColorParen, FamilyColor('('))
	assert.Equal(t, ColorParen, FamilyColor(')'))
	assert.Equal(t, ColorBrace, FamilyColor('}'))
	assert.Equal(t, ColorBracket, FamilyColor('['))
	assert.Equal(t, ColorOther, FamilyColor('x'))
}

func TestRenderSession(t *testing.T) {
	out := RenderSession(stepped(t, "(]", 2))

	assert.Contains(t, out, "closing bracket ']' does not match top '('")
	assert.Contains(t, out, "Stack")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer("notty", 60)
	out, err := render("# Nesting\n\nClose the **last** opened bracket first.")
	require.NoError(t, err)
	assert.Contains(t, out, "Nesting")
	assert.Contains(t, out, "last")
}
