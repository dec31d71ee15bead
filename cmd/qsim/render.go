package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theapemachine/qsim"
)

const barWidth = 40

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

// renderTally lists every basis string with its count, share and a bar.
func renderTally(tally qsim.Tally, shots int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("counts (%d shots)", shots)))

	for _, key := range tally.Keys() {
		count := tally[key]

		share := 0.0
		if shots > 0 {
			share = float64(count) / float64(shots)
		}

		bar := strings.Repeat("█", int(share*barWidth+0.5))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(key))
		b.WriteString(fmt.Sprintf(" %8d ", count))
		b.WriteString(dimStyle.Render(fmt.Sprintf("%6.2f%% ", share*100)))
		b.WriteString(barStyle.Render(bar))
	}

	return panelStyle.Render(b.String())
}
