package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/internal/presentation/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:  "Valid Nesting",
			input: "{()}",
			contains: []string{
				"graph LR",
				"s0((\"{()}\"))",
				"s1[\"{ push<br/>stack: {\"]",
				"s3[\") pop<br/>stack: {\"]",
				"s5([\"valid_accepted<br/>stack: empty\"])",
				"s4 --> s5",
				"classDef verdict fill:#6BCB77",
			},
		},
		{
			name:  "Mismatch Hexagon",
			input: "(]",
			contains: []string{
				"s2{{\"] bracket_mismatch<br/>stack: (\"}}",
				"class s2 reject_mismatch;",
				"classDef verdict fill:#FF5C5C",
			},
		},
		{
			name:  "Ignored Characters",
			input: "a",
			contains: []string{
				"s1[\"a ignore<br/>stack: empty\"]",
			},
		},
		{
			name:  "Quote Escaping",
			input: "\"",
			contains: []string{
				"s0((\"#quot;\"))",
			},
		},
	}

	engine := balance.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace, err := engine.Validate(context.Background(), tt.input)
			require.NoError(t, err)

			got := graph.GenerateMermaid(trace)
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(got, want), "missing %q in:\n%s", want, got)
			}
		})
	}
}
