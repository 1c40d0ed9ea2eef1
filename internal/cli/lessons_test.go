package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/balance/pkg/adapters/memory"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessons(t *testing.T) {
	loader, err := memory.NewLoader(
		domain.Exercise{ID: "01", Title: "Pair", Input: "()", Expect: domain.ExpectValid, Notes: "push then pop"},
		domain.Exercise{ID: "02", Title: "Crossed", Input: "(]", Expect: domain.ExpectInvalid, Reason: domain.ReasonBracketMismatch},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Lessons(&buf, loader, nil))
	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, `"(]"`)
	assert.Contains(t, out, "invalid (bracket_mismatch)")
	assert.NotContains(t, out, "push then pop")

	buf.Reset()
	upper := func(md string) (string, error) { return strings.ToUpper(md), nil }
	require.NoError(t, Lessons(&buf, loader, upper))
	assert.Contains(t, buf.String(), "PUSH THEN POP")
}

func TestLessons_Empty(t *testing.T) {
	loader, err := memory.NewLoader()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Lessons(&buf, loader, nil))
	assert.Equal(t, ">>> No exercises found.\n", buf.String())
}
