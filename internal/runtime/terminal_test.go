package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/balance/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestEngine_StepIsIdempotentOnceTerminal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		status domain.Status
	}{
		{"valid", "[()]", domain.StatusValidAccepted},
		{"underflow", ")", domain.StatusInvalidRejected},
		{"mismatch", "(}", domain.StatusInvalidRejected},
		{"unclosed", "{", domain.StatusInvalidRejected},
		{"empty", "", domain.StatusValidAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine()
			ctx := context.Background()

			final, _ := e.Run(ctx, start(t, e, tt.input))
			assert.Equal(t, tt.status, final.Status)

			snapshot := *final
			snapshotStack := string(final.Stack)

			again, evt := e.Step(ctx, final)
			assert.Same(t, final, again, "terminal step must return the same session")
			assert.Equal(t, final.LastEvent, evt)
			assert.Equal(t, snapshot.Cursor, again.Cursor)
			assert.Equal(t, snapshot.Steps, again.Steps)
			assert.Equal(t, snapshot.Current, again.Current)
			assert.Equal(t, snapshotStack, string(again.Stack))
		})
	}
}
