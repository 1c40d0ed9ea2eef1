package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/balance/pkg/domain"
)

// FormatSession is the plain-text SessionRenderer used when no renderer is configured.
//
//	[in_progress] pushed opening bracket '('
//	  input   {[()]}  (3/6)
//	  current (
//	  stack   ( [ {   (top first)
func FormatSession(s *domain.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s\n", statusLabel(s), s.LastEvent.Message)
	fmt.Fprintf(&b, "  input   %s  (%d/%d)\n", string(s.Input), s.Cursor, len(s.Input))
	if ch, ok := s.CurrentChar(); ok {
		fmt.Fprintf(&b, "  current %c\n", ch)
	} else {
		b.WriteString("  current -\n")
	}
	b.WriteString("  stack   ")
	b.WriteString(FormatStack(s))
	return b.String()
}

// FormatStack renders the stack top-first, separated by spaces.
func FormatStack(s *domain.Session) string {
	top := s.StackTopFirst()
	if len(top) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(top))
	for i, r := range top {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ") + "   (top first)"
}

func statusLabel(s *domain.Session) string {
	if s.Reason != "" {
		return fmt.Sprintf("%s: %s", s.Status, s.Reason)
	}
	return string(s.Status)
}
