package tui

import (
	"github.com/aretw0/balance/pkg/domain"
	"github.com/charmbracelet/lipgloss"
)

// Bracket family colours
var (
	ColorParen   = lipgloss.Color("#6BCB77")
	ColorBrace   = lipgloss.Color("#4D96FF")
	ColorBracket = lipgloss.Color("#FFC93C")
	ColorOther   = lipgloss.Color("#DDDDDD")
)

// UI colours
var (
	ColorAccent = lipgloss.Color("#3A86FF")
	ColorDanger = lipgloss.Color("#FF5C5C")
	ColorOK     = lipgloss.Color("#6BCB77")
	ColorMuted  = lipgloss.Color("#AAAAAA")
	ColorInk    = lipgloss.Color("#222222")
	ColorBorder = lipgloss.Color("#CCCCCC")
)

// Component styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(10)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	EmptyStackStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	CurrentCharStyle = lipgloss.NewStyle().
				Foreground(ColorBrace).
				Bold(true).
				Underline(true)

	ConsumedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	FlashStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Italic(true)

	// Stack boxes; the top box gets an accent border.
	StackBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorInk).
			Bold(true).
			Padding(0, 2)

	NotesStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorBorder).
			PaddingLeft(1)
)

// FamilyColor returns the colour of a bracket family, shared by opening and closing characters.
func FamilyColor(r rune) lipgloss.Color {
	switch domain.Family(r) {
	case domain.FamilyParen:
		return ColorParen
	case domain.FamilyBrace:
		return ColorBrace
	case domain.FamilyBracket:
		return ColorBracket
	}
	return ColorOther
}

// MessageStyle colours an event message by kind and outcome.
func MessageStyle(e domain.Event) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch e.Kind {
	case domain.EventPush, domain.EventPop:
		return style.Foreground(ColorOK)
	case domain.EventRejectEmpty, domain.EventRejectMismatch:
		return style.Foreground(ColorDanger).Bold(true)
	case domain.EventVerdict:
		if e.Status == domain.StatusValidAccepted {
			return style.Foreground(ColorOK).Bold(true)
		}
		return style.Foreground(ColorDanger).Bold(true)
	case domain.EventIgnore, domain.EventNone:
		return style.Foreground(ColorMuted)
	}
	return style.Foreground(ColorAccent)
}
