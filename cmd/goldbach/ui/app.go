package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goldbach/internal/logging"
	"goldbach/internal/stats"
)

// Page identifies one of the explorer's views. The app is an explicit state
// machine over these pages; exactly one is active at a time.
type Page int

const (
	PageWelcome Page = iota
	PageSingle
	PageRange
)

// Options configures the TUI. The cobra layer fills this from the loaded
// config so the ui package never touches config files itself.
type Options struct {
	Theme       string // "light" or "dark"; anything else auto-detects
	MaxNumber   int
	Workers     int
	LegendLimit int
	ChartWidth  int
	ChartHeight int

	// Tracker records session analysis stats; nil disables tracking.
	Tracker *stats.Tracker
}

// App is the root bubbletea model: header, footer, and the active page.
type App struct {
	page    Page
	welcome WelcomeModel
	single  SinglePageModel
	ranged  RangePageModel

	styles Styles
	opts   Options
	width  int
	height int
	ready  bool
}

// NewApp creates the root model with all pages initialized.
func NewApp(opts Options) App {
	styles := DefaultStyles()
	switch opts.Theme {
	case "dark":
		styles = NewStyles(DarkTheme())
	case "light":
		styles = NewStyles(LightTheme())
	}

	return App{
		page:    PageWelcome,
		welcome: NewWelcomeModel(styles),
		single:  NewSinglePageModel(styles, opts),
		ranged:  NewRangePageModel(styles, opts),
		styles:  styles,
		opts:    opts,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.single.Init(), a.ranged.Init())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyEsc:
			if a.page == PageWelcome {
				return a, tea.Quit
			}
			logging.UI("page change: %d -> welcome", a.page)
			a.page = PageWelcome
			return a, nil
		}

		// Welcome page owns the menu keys.
		if a.page == PageWelcome {
			switch msg.String() {
			case "1", "s":
				a.page = PageSingle
				logging.UI("page change: welcome -> single")
				return a, a.single.Focus()
			case "2", "r":
				a.page = PageRange
				logging.UI("page change: welcome -> range")
				return a, a.ranged.Focus()
			case "q":
				return a, tea.Quit
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

		contentHeight := msg.Height - a.chromeHeight()
		a.welcome.SetSize(msg.Width, contentHeight)
		a.single.SetSize(msg.Width, contentHeight)
		a.ranged.SetSize(msg.Width, contentHeight)
		return a, nil

	// Analysis results go to the page that requested them, even when the
	// user has navigated away in the meantime. The page must leave its
	// loading state or it would reject input forever.
	case singleResultMsg:
		var cmd tea.Cmd
		a.single, cmd = a.single.Update(msg)
		return a, cmd
	case rangeResultMsg, rangeErrMsg:
		var cmd tea.Cmd
		a.ranged, cmd = a.ranged.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.page {
	case PageSingle:
		a.single, cmd = a.single.Update(msg)
	case PageRange:
		a.ranged, cmd = a.ranged.Update(msg)
	}
	return a, cmd
}

// chromeHeight is the vertical space taken by header and footer.
func (a App) chromeHeight() int { return 5 }

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	var body string
	switch a.page {
	case PageWelcome:
		body = a.welcome.View()
	case PageSingle:
		body = a.single.View()
	case PageRange:
		body = a.ranged.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderHeader(),
		body,
		a.renderFooter(),
	)
}

func (a App) renderHeader() string {
	title := a.styles.Header.Render(" Goldbach Explorer ")
	badge := a.styles.Badge.Render("v1.0")

	var pageName string
	switch a.page {
	case PageWelcome:
		pageName = "Welcome"
	case PageSingle:
		pageName = "Single number"
	case PageRange:
		pageName = "Range analysis"
	}
	status := a.styles.Muted.Render(" " + pageName)

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge, " ", status)
	return lipgloss.JoinVertical(lipgloss.Left, line, a.styles.RenderDivider(a.width))
}

func (a App) renderFooter() string {
	var keys string
	switch a.page {
	case PageWelcome:
		keys = "1: single number • 2: range • q: quit"
	case PageSingle:
		keys = "Enter: analyze • Esc: menu • Ctrl+C: quit"
	case PageRange:
		keys = "Tab: switch field • Enter: analyze • Esc: menu • Ctrl+C: quit"
	}

	session := ""
	if a.opts.Tracker != nil {
		snap := a.opts.Tracker.Snapshot()
		if snap.Total.Numbers > 0 {
			session = a.styles.Muted.Render(fmt.Sprintf(
				"session: %d numbers, %d pairs", snap.Total.Numbers, snap.Total.Pairs))
			if snap.BestNumber > 0 {
				session += a.styles.Muted.Render(fmt.Sprintf(
					", richest %d with %d pairs", snap.BestNumber, snap.BestPairCount))
			}
		}
	}

	footer := a.styles.Footer.Render(keys)
	if session != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, a.styles.Footer.Render(session))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(footer)
}

// Run starts the interactive program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
