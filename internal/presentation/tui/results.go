package tui

import (
	"strings"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/locale"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3"))
	primaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#facc15"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5f5f5"))
	infoStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#60a5fa"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f87171"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#16a34a")).Padding(0, 1)
)

// RenderResults draws a result sequence in a box. The first numeric entry is
// the primary result and is highlighted.
func RenderResults(title string, seq domain.ResultSequence) string {
	if len(seq) == 0 {
		return ""
	}

	width := 0
	for _, r := range seq {
		width = max(width, lipgloss.Width(r.Label))
	}

	lines := []string{titleStyle.Render(title)}
	for i, r := range seq {
		text := locale.FormatValue(r.Value, r.Unit)
		switch {
		case r.IsFailure():
			lines = append(lines, errorStyle.Render(r.Label+": "+text))
		case r.Kind == domain.ResultInfo:
			lines = append(lines, infoStyle.Render(text))
		default:
			style := valueStyle
			if i == 0 {
				style = primaryStyle
			}
			pad := strings.Repeat(" ", width-lipgloss.Width(r.Label))
			lines = append(lines, labelStyle.Render(r.Label+pad)+"  "+style.Render(text))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
