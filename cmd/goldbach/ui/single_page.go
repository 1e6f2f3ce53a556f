package ui

import (
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

// singleResultMsg carries a finished single-number analysis.
type singleResultMsg struct {
	number  int
	pairs   []goldbach.Pair
	elapsed time.Duration
}

// SinglePageModel is the single-number analysis view: one input, results in
// a scrollable viewport (pair table plus scatter plot).
type SinglePageModel struct {
	input    textinput.Model
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

// NewSinglePageModel creates the single-number page.
func NewSinglePageModel(styles Styles, opts Options) SinglePageModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Even number > 2 (up to %d)", opts.MaxNumber)
	ti.Prompt = "│ "
	ti.CharLimit = 12
	ti.Width = 40
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)

	return SinglePageModel{
		input:    ti,
		viewport: vp,
		spinner:  sp,
		styles:   styles,
		opts:     opts,
	}
}

// Init implements the page contract.
func (m SinglePageModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Focus gives the input focus when the page becomes active.
func (m *SinglePageModel) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Update handles messages.
func (m SinglePageModel) Update(msg tea.Msg) (SinglePageModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && !m.isLoading {
			return m.handleSubmit()
		}

	case singleResultMsg:
		m.isLoading = false
		m.hasResult = true
		if m.opts.Tracker != nil {
			m.opts.Tracker.Record("tui", 1, len(msg.pairs), msg.elapsed, msg.number, len(msg.pairs))
		}
		m.viewport.SetContent(m.renderResult(msg))
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.isLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	if !m.isLoading {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleSubmit validates the typed input. Format errors stay here in the
// presentation layer; the core only ever sees well-typed integers.
func (m SinglePageModel) handleSubmit() (SinglePageModel, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		m.inputError = fmt.Sprintf("%q is not a whole number", raw)
		return m, nil
	}
	if n <= 2 || n%2 != 0 {
		m.inputError = fmt.Sprintf("%d is not an even number greater than 2", n)
		return m, nil
	}
	if n > m.opts.MaxNumber {
		m.inputError = fmt.Sprintf("%d is above the configured ceiling of %d", n, m.opts.MaxNumber)
		return m, nil
	}

	m.inputError = ""
	m.isLoading = true
	logging.UI("single analysis requested: %d", n)

	return m, tea.Batch(m.spinner.Tick, analyzeSingle(n))
}

// analyzeSingle runs the core computation off the update loop.
func analyzeSingle(n int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		pairs := goldbach.Pairs(n)
		elapsed := time.Since(start)
		logging.Compute("pairs(%d): %d pairs in %s", n, len(pairs), elapsed)
		return singleResultMsg{number: n, pairs: pairs, elapsed: elapsed}
	}
}

func (m SinglePageModel) renderResult(msg singleResultMsg) string {
	summary := m.styles.Success.Render(fmt.Sprintf(
		"%d = sum of two primes in %d way(s)", msg.number, len(msg.pairs)))
	if len(msg.pairs) == 0 {
		summary = m.styles.Warning.Render(fmt.Sprintf("No prime pairs found for %d", msg.number))
	}

	table := NewTable("Prime pairs", "p1", "p2", "sum")
	for _, p := range msg.pairs {
		table.AddRow(
			strconv.Itoa(p.P1),
			strconv.Itoa(p.P2),
			fmt.Sprintf("%d + %d = %d", p.P1, p.P2, msg.number),
		)
	}

	scatter := chart.Scatter(
		map[int][]goldbach.Pair{msg.number: msg.pairs},
		chart.ScatterOptions{
			Width:       m.opts.ChartWidth,
			Height:      m.opts.ChartHeight,
			LegendLimit: m.opts.LegendLimit,
		},
	)

	timing := m.styles.Muted.Render(fmt.Sprintf("computed in %s", msg.elapsed.Round(time.Microsecond)))

	return lipgloss.JoinVertical(lipgloss.Left, summary, "", table.View(m.styles), "", scatter, "", timing)
}

// View renders the page.
func (m SinglePageModel) View() string {
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1).
		Render(m.input.View())

	parts := []string{inputBox}

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
func (m *SinglePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = min(40, w-8)
	m.viewport.Width = w - 4
	m.viewport.Height = max(5, h-6)
}
