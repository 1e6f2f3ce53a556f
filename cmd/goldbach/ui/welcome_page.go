package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const aboutMarkdown = `The **Goldbach conjecture** states that every even integer greater
than 2 can be written as the sum of two primes. First stated in a 1742
letter from Christian Goldbach to Euler, it has been verified far beyond
4×10¹⁸ but remains unproven.

This explorer finds those prime pairs for you:

- **Single number** — every decomposition of one even number, with a
  scatter plot of the pairs.
- **Range analysis** — pair counts across a whole range, charted so the
  growth pattern (the "Goldbach comet") becomes visible.
`

// WelcomeModel renders the static welcome screen. Menu keys are handled by
// the App router, so this model only draws.
type WelcomeModel struct {
	styles   Styles
	rendered string
	width    int
	height   int
}

// NewWelcomeModel creates the welcome page, rendering the intro markdown
// once up front.
func NewWelcomeModel(styles Styles) WelcomeModel {
	m := WelcomeModel{styles: styles}
	m.rendered = m.renderAbout(76)
	return m
}

func (m WelcomeModel) renderAbout(wrap int) string {
	var renderer *glamour.TermRenderer
	var err error
	if m.styles.Theme.IsDark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(wrap),
		)
	}
	if err != nil {
		return aboutMarkdown
	}

	out, err := renderer.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return out
}

// SetSize updates the layout and re-wraps the intro text.
func (m *WelcomeModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	wrap := w - 8
	if wrap < 20 {
		wrap = 20
	}
	if wrap > 100 {
		wrap = 100
	}
	m.rendered = m.renderAbout(wrap)
}

// View renders the page.
func (m WelcomeModel) View() string {
	menu := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Bold.Render("Choose a mode:"),
		"",
		"  "+m.styles.Prompt.Render("[1]")+" Analyze a single even number",
		"  "+m.styles.Prompt.Render("[2]")+" Analyze a range of even numbers",
		"  "+m.styles.Muted.Render("[q]")+" Quit",
	)

	return m.styles.Content.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		Logo(m.styles),
		m.rendered,
		menu,
	))
}
