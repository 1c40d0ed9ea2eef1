package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/balance/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a validation trace.
// Every event is one node, left to right, labelled with the character and the stack after it.
// It applies semantic styling:
// - Start: ((Circle))
// - Rejection: {{Hexagon}}
// - Verdict: ([Stadium])
// - Default: [Rectangle]
func GenerateMermaid(trace *domain.Trace) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    s0((\"%s\"))\n", escapeLabel(string(trace.Session.Input))))

	stack := []rune{}
	for i, evt := range trace.Events {
		stack = replay(stack, evt)
		id := fmt.Sprintf("s%d", i+1)

		opener, closer := "[", "]"
		switch evt.Kind {
		case domain.EventRejectEmpty, domain.EventRejectMismatch:
			opener, closer = "{{", "}}"
		case domain.EventVerdict:
			opener, closer = "([", "])"
		}

		label := fmt.Sprintf("%s<br/>stack: %s", stepLabel(evt), stackLabel(stack))
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeLabel(label), closer))
		sb.WriteString(fmt.Sprintf("    s%d --> %s\n", i, id))
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, evt.Kind))
	}

	sb.WriteString("\n    %% Event Styles\n")
	// Force black text (color:#000) for high-contrast on light and dark themes
	sb.WriteString("    classDef push fill:#e1f5fe,stroke:#4D96FF,color:#000;\n")
	sb.WriteString("    classDef pop fill:#e8f5e9,stroke:#6BCB77,color:#000;\n")
	sb.WriteString("    classDef ignore fill:#f5f5f5,stroke:#cccccc,color:#666;\n")
	sb.WriteString("    classDef reject_empty fill:#ffebee,stroke:#FF5C5C,stroke-width:3px,color:#000;\n")
	sb.WriteString("    classDef reject_mismatch fill:#ffebee,stroke:#FF5C5C,stroke-width:3px,color:#000;\n")
	if trace.Valid() {
		sb.WriteString("    classDef verdict fill:#6BCB77,stroke:#1E5128,stroke-width:3px,color:#000;\n")
	} else {
		sb.WriteString("    classDef verdict fill:#FF5C5C,stroke:#8B0000,stroke-width:3px,color:#000;\n")
	}

	return sb.String()
}

// replay applies evt to a local copy of the stack so each node can show it.
func replay(stack []rune, evt domain.Event) []rune {
	switch evt.Kind {
	case domain.EventPush:
		return append(stack, evt.Char)
	case domain.EventPop:
		if len(stack) > 0 {
			return stack[:len(stack)-1]
		}
	}
	return stack
}

func stepLabel(evt domain.Event) string {
	switch evt.Kind {
	case domain.EventVerdict:
		return string(evt.Status)
	case domain.EventRejectEmpty, domain.EventRejectMismatch:
		return fmt.Sprintf("%c %s", evt.Char, evt.Reason)
	}
	return fmt.Sprintf("%c %s", evt.Char, evt.Kind)
}

func stackLabel(stack []rune) string {
	if len(stack) == 0 {
		return "empty"
	}
	return string(stack)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
