package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/critterquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a count out of a maximum.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Value      int
	Max        int
	Width      int
}

// Percent returns Value/Max clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(float64(p.Value)/float64(p.Max), 0), 1)
}

// View renders the label, the bar and the raw count.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(p.LabelWidth).
		Render(p.Label)
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d", p.Value))

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(count)-2, 4)
	filled := int(float64(barWidth) * p.Percent())

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + "  " + bar + count
}
