// Package chart renders Goldbach analysis results as terminal graphics.
// It is a pure consumer of the numeric core: scatter plots of prime pairs
// and bar charts of pair counts, produced as styled strings for the CLI
// and the TUI viewports. No computation happens here.
package chart

import "github.com/charmbracelet/lipgloss"

// Series palette, cycled when a plot carries more even numbers than colors.
var seriesColors = []lipgloss.Color{
	"#e57373", // orange
	"#4db6ac", // teal
	"#29434e", // dark blue
	"#ffd54f", // yellow
	"#ff8a65", // orange-red
}

var (
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	legendTitle = lipgloss.NewStyle().Bold(true)
)

func seriesStyle(idx int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesColors[idx%len(seriesColors)])
}
