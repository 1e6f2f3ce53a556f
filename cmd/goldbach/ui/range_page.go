package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goldbach/internal/chart"
	"goldbach/internal/goldbach"
	"goldbach/internal/logging"
)

// rangeResultMsg carries a finished range analysis.
type rangeResultMsg struct {
	start    int
	end      int
	analysis *goldbach.RangeAnalysis
	elapsed  time.Duration
}

// rangeErrMsg carries an analysis failure (cancellation only; the core
// itself never fails on numeric input).
type rangeErrMsg struct{ err error }

// RangePageModel is the range analysis view: start/end inputs, results in a
// scrollable viewport (bar chart of counts plus a table).
type RangePageModel struct {
	inputs   [2]textinput.Model // 0 = start, 1 = end
	focusIdx int
	viewport viewport.Model
	spinner  spinner.Model

	isLoading  bool
	inputError string
	hasResult  bool

	styles Styles
	opts   Options
	width  int
	height int
}

// NewRangePageModel creates the range analysis page.
func NewRangePageModel(styles Styles, opts Options) RangePageModel {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = "│ "
		ti.CharLimit = 12
		ti.Width = 20
		ti.PromptStyle = styles.Prompt
		ti.TextStyle = styles.UserInput
		return ti
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return RangePageModel{
		inputs:   [2]textinput.Model{mk("Start (e.g. 4)"), mk("End (e.g. 100)")},
		viewport: viewport.New(80, 20),
		spinner:  sp,
		styles:   styles,
		opts:     opts,
	}
}

// Init implements the page contract.
func (m RangePageModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Focus gives the start input focus when the page becomes active.
func (m *RangePageModel) Focus() tea.Cmd {
	m.focusIdx = 0
	m.inputs[0].Focus()
	m.inputs[1].Blur()
	return textinput.Blink
}

// Update handles messages.
func (m RangePageModel) Update(msg tea.Msg) (RangePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab:
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = 1 - m.focusIdx
			m.inputs[m.focusIdx].Focus()
			return m, textinput.Blink

		case tea.KeyEnter:
			if !m.isLoading {
				return m.handleSubmit()
			}
		}

	case rangeResultMsg:
		m.isLoading = false
		m.hasResult = true
		if m.opts.Tracker != nil {
			best, bestCount := 0, 0
			total := 0
			for num, count := range msg.analysis.Counts {
				total += count
				if count > bestCount {
					best, bestCount = num, count
				}
			}
			m.opts.Tracker.Record("tui", len(msg.analysis.Counts), total, msg.elapsed, best, bestCount)
		}
		m.viewport.SetContent(m.renderResult(msg))
		m.viewport.GotoTop()
		return m, nil

	case rangeErrMsg:
		m.isLoading = false
		m.inputError = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		if m.isLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if !m.isLoading {
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleSubmit validates both fields before the core is invoked.
func (m RangePageModel) handleSubmit() (RangePageModel, tea.Cmd) {
	rawStart := strings.TrimSpace(m.inputs[0].Value())
	rawEnd := strings.TrimSpace(m.inputs[1].Value())
	if rawStart == "" || rawEnd == "" {
		m.inputError = "both start and end are required"
		return m, nil
	}

	start, err := strconv.Atoi(rawStart)
	if err != nil {
		m.inputError = fmt.Sprintf("start %q is not a whole number", rawStart)
		return m, nil
	}
	end, err := strconv.Atoi(rawEnd)
	if err != nil {
		m.inputError = fmt.Sprintf("end %q is not a whole number", rawEnd)
		return m, nil
	}
	if end < start {
		m.inputError = fmt.Sprintf("end %d is below start %d", end, start)
		return m, nil
	}
	if end > m.opts.MaxNumber {
		m.inputError = fmt.Sprintf("end %d is above the configured ceiling of %d", end, m.opts.MaxNumber)
		return m, nil
	}

	m.inputError = ""
	m.isLoading = true
	logging.UI("range analysis requested: [%d, %d]", start, end)

	return m, tea.Batch(m.spinner.Tick, analyzeRange(start, end, m.opts.Workers))
}

// analyzeRange runs the core computation off the update loop.
func analyzeRange(start, end, workers int) tea.Cmd {
	return func() tea.Msg {
		began := time.Now()
		analysis, err := goldbach.AnalyzeRangeContext(context.Background(), start, end, workers)
		if err != nil {
			return rangeErrMsg{err: err}
		}
		elapsed := time.Since(began)
		logging.Compute("range [%d,%d]: %d numbers in %s (workers=%d)",
			start, end, len(analysis.Counts), elapsed, workers)
		return rangeResultMsg{start: start, end: end, analysis: analysis, elapsed: elapsed}
	}
}

func (m RangePageModel) renderResult(msg rangeResultMsg) string {
	nums := msg.analysis.Numbers()
	if len(nums) == 0 {
		return m.styles.Warning.Render(fmt.Sprintf(
			"No even numbers to analyze in [%d, %d]", msg.start, msg.end))
	}

	summary := m.styles.Success.Render(fmt.Sprintf(
		"Analyzed %d even number(s) from %d to %d", len(nums), nums[0], nums[len(nums)-1]))

	bars := chart.Bar(msg.analysis.Counts, chart.BarOptions{
		MaxBarWidth: min(50, m.width-15),
	})

	scatter := chart.Scatter(msg.analysis.Pairs, chart.ScatterOptions{
		Width:       m.opts.ChartWidth,
		Height:      m.opts.ChartHeight,
		LegendLimit: m.opts.LegendLimit,
	})

	table := NewTable("Decompositions", "even", "pairs", "decompositions")
	for _, num := range nums {
		table.AddRow(
			strconv.Itoa(num),
			strconv.Itoa(msg.analysis.Counts[num]),
			formatPairs(msg.analysis.Pairs[num]),
		)
	}

	timing := m.styles.Muted.Render(fmt.Sprintf("computed in %s", msg.elapsed.Round(time.Microsecond)))

	return lipgloss.JoinVertical(lipgloss.Left, summary, "", bars, "", scatter, "", table.View(m.styles), "", timing)
}

// formatPairs renders a pair list compactly, truncated for wide rows.
func formatPairs(pairs []goldbach.Pair) string {
	const maxShown = 6
	parts := make([]string, 0, min(len(pairs), maxShown)+1)
	for i, p := range pairs {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("… +%d more", len(pairs)-maxShown))
			break
		}
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.P1, p.P2))
	}
	return strings.Join(parts, " ")
}

// View renders the page.
func (m RangePageModel) View() string {
	box := func(ti textinput.Model, focused bool) string {
		border := m.styles.Theme.Border
		if focused {
			border = m.styles.Theme.Accent
		}
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(ti.View())
	}

	inputs := lipgloss.JoinHorizontal(
		lipgloss.Top,
		box(m.inputs[0], m.focusIdx == 0),
		"  ",
		box(m.inputs[1], m.focusIdx == 1),
	)

	parts := []string{inputs}

	if m.inputError != "" {
		parts = append(parts, m.styles.Error.Render("Error: "+m.inputError))
	}
	if m.isLoading {
		parts = append(parts, m.styles.Spinner.Render(m.spinner.View())+" Computing...")
	}
	if m.hasResult && !m.isLoading {
		parts = append(parts, m.viewport.View())
	}

	return m.styles.Content.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the layout.
func (m *RangePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w - 4
	m.viewport.Height = max(5, h-6)
}
