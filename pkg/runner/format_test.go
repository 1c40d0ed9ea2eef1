package runner

import (
	"context"
	"testing"

	"github.com/aretw0/balance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSession(t *testing.T) {
	engine := balance.New()
	ctx := context.Background()

	s, err := engine.Start(ctx, "{[(")
	require.NoError(t, err)
	for range 3 {
		s, _ = engine.Step(ctx, s)
	}

	want := "[in_progress] pushed opening bracket '('\n" +
		"  input   {[(  (3/3)\n" +
		"  current (\n" +
		"  stack   ( [ {   (top first)"
	assert.Equal(t, want, FormatSession(s))

	s, _ = engine.Step(ctx, s)
	assert.Contains(t, FormatSession(s), "[invalid_rejected: unclosed_brackets] expression is invalid (stack not empty at end)")
	assert.Contains(t, FormatSession(s), "  current -\n")
}

func TestFormatStack_Empty(t *testing.T) {
	s := balance.New().NewSession(context.Background())
	assert.Equal(t, "(empty)", FormatStack(s))
}
