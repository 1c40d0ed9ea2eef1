package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Balance banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   _           _                      ", "#6BCB77"},
		{"  | |__   __ _| | __ _ _ __   ___ ___ ", "#4D96FF"},
		{"  | '_ \\ / _` | |/ _` | '_ \\ / __/ _ \\", "#3A86FF"},
		{"  | |_) | (_| | | (_| | | | | (_|  __/", "#FFC93C"},
		{"  |_.__/ \\__,_|_|\\__,_|_| |_|\\___\\___|", "#FF5C5C"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  step through ( { [ ] } ) v"+version).Faint())
	fmt.Fprintln(w)
}
