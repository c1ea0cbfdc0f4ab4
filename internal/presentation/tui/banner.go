package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{"   __ _  __ _ _ __ ___   ___ __ _| | ___ ", "#4ade80"},
	{"  / _` |/ _` | '__/ _ \\ / __/ _` | |/ __|", "#22c55e"},
	{" | (_| | (_| | | | (_) | (_| (_| | | (__ ", "#16a34a"},
	{"  \\__,_|\\__, |_|  \\___/ \\___\\__,_|_|\\___|", "#15803d"},
	{"        |___/                            ", "#166534"},
}

// PrintBanner writes the application banner in shades of green, degrading to
// plain text when w is not a color terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  calculadoras agronômicas "+version).Faint())
	fmt.Fprintln(w)
}
