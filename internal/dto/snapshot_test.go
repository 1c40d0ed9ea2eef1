package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/balance/internal/dto"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot_InProgress(t *testing.T) {
	s := domain.NewSession("s1")
	s.Input = []rune("{[()]}")
	s.Cursor = 3
	s.Stack = []rune("{[(")
	s.Current, s.HasCurrent = '(', true
	s.Status = domain.StatusInProgress
	s.Steps = 3
	s.LastEvent = domain.Event{Kind: domain.EventPush, Char: '(', Index: 2, Status: domain.StatusInProgress, Message: "pushed opening bracket '('"}

	snap := dto.NewSnapshot(s)

	assert.Equal(t, "s1", snap.SessionID)
	assert.Equal(t, "{[(", snap.Stack)
	assert.Equal(t, "(", snap.CurrentChar)
	assert.Equal(t, "(", snap.Event.Char)
	assert.Empty(t, snap.Event.Top)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"cursor", "stack", "current_char", "status", "event"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "reason")
}

func TestNewSnapshot_Fresh(t *testing.T) {
	snap := dto.NewSnapshot(domain.NewSession("s2"))

	assert.Empty(t, snap.CurrentChar)
	assert.Empty(t, snap.Stack)
	assert.Equal(t, domain.StatusNotStarted, snap.Status)
	assert.Equal(t, domain.EventNone, snap.Event.Kind)
}
