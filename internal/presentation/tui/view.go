package tui

import (
	"strings"

	"github.com/aretw0/balance/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

// EmptyStackText is shown in place of the stack when nothing is open.
const EmptyStackText = "Stack is empty"

// StackView draws one box per open bracket, top first. The top box has an accent border.
func StackView(s *domain.Session) string {
	stack := s.StackTopFirst()
	if len(stack) == 0 {
		return EmptyStackStyle.Render(EmptyStackText)
	}

	boxes := make([]string, 0, len(stack))
	for i, r := range stack {
		style := StackBoxStyle.Background(FamilyColor(r))
		if i == 0 {
			style = style.BorderForeground(ColorAccent)
		}
		box := style.Render(string(r))
		if i == 0 {
			box = lipgloss.JoinHorizontal(lipgloss.Center, box, MutedStyle.Render("  <- top"))
		}
		boxes = append(boxes, box)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

// StackChangeView summarizes what the last operation did to the stack:
// "+" before each pushed bracket and "-" before each popped one, top first.
// It returns "" when the stack did not change.
func StackChangeView(diff *domain.SessionDiff) string {
	if diff == nil || (len(diff.Pushed) == 0 && len(diff.Popped) == 0) {
		return ""
	}

	parts := make([]string, 0, len(diff.Pushed)+len(diff.Popped))
	for _, r := range diff.Popped {
		parts = append(parts, lipgloss.NewStyle().Foreground(FamilyColor(r)).Render("- "+string(r)))
	}
	for _, r := range diff.Pushed {
		parts = append(parts, lipgloss.NewStyle().Foreground(FamilyColor(r)).Bold(true).Render("+ "+string(r)))
	}
	return strings.Join(parts, "  ")
}

// ExpressionView renders the input with consumed characters dimmed and the current one highlighted.
func ExpressionView(s *domain.Session) string {
	if len(s.Input) == 0 {
		return MutedStyle.Render("(empty expression)")
	}

	current := -1
	if s.HasCurrent {
		current = s.Cursor - 1
	}

	var b strings.Builder
	for i, r := range s.Input {
		switch {
		case i == current:
			b.WriteString(CurrentCharStyle.Foreground(FamilyColor(r)).Render(string(r)))
		case i < s.Cursor:
			b.WriteString(ConsumedStyle.Render(string(r)))
		default:
			b.WriteString(string(r))
		}
	}
	return b.String()
}

// CurrentView renders the character processed by the last step.
func CurrentView(s *domain.Session) string {
	ch, ok := s.CurrentChar()
	if !ok {
		return MutedStyle.Render("-")
	}
	return lipgloss.NewStyle().Foreground(FamilyColor(ch)).Bold(true).Render(string(ch))
}

// MessageView renders the last event message in its kind's colour.
func MessageView(s *domain.Session) string {
	return MessageStyle(s.LastEvent).Render(s.LastEvent.Message)
}

// RenderSession is the styled, non-interactive view of a snapshot used by the line-based runner on a terminal.
func RenderSession(s *domain.Session) string {
	rows := []string{
		row("Expression", ExpressionView(s)),
		row("Current", CurrentView(s)),
		row("Message", MessageView(s)),
		row("Stack", StackView(s)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}
