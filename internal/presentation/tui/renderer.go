package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders exercise notes (markdown) using glamour.
// theme is one of auto, dark, light or notty; anything else behaves as auto.
func NewRenderer(theme string, width int) func(string) (string, error) {
	opts := []glamour.TermRendererOption{}
	switch theme {
	case "dark", "light", "notty":
		opts = append(opts, glamour.WithStandardStyle(theme))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		// Fall back to the raw markdown; notes stay readable.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
