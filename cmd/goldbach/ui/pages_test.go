package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"goldbach/internal/goldbach"
)

func testOptions() Options {
	return Options{
		Theme:       "light",
		MaxNumber:   100000,
		Workers:     1,
		LegendLimit: 10,
		ChartWidth:  30,
		ChartHeight: 10,
	}
}

func sized(t *testing.T, a App) App {
	t.Helper()
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(App)
}

func TestApp_StartsOnWelcome(t *testing.T) {
	app := sized(t, NewApp(testOptions()))

	view := app.View()
	if !strings.Contains(view, "Choose a mode:") {
		t.Error("welcome menu missing from initial view")
	}
	if !strings.Contains(view, "Goldbach") {
		t.Error("welcome view missing title banner")
	}
}

func TestApp_PageSwitching(t *testing.T) {
	app := sized(t, NewApp(testOptions()))

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	app = model.(App)
	if app.page != PageSingle {
		t.Fatalf("key 1 should open single page, got page %d", app.page)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	if app.page != PageWelcome {
		t.Fatalf("esc should return to welcome, got page %d", app.page)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	app = model.(App)
	if app.page != PageRange {
		t.Fatalf("key 2 should open range page, got page %d", app.page)
	}
}

func TestApp_SingleResultLandsAfterLeavingPage(t *testing.T) {
	app := sized(t, NewApp(testOptions()))

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	app = model.(App)
	app.single.input.SetValue("100")
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if !app.single.isLoading {
		t.Fatal("valid submit should enter loading state")
	}

	// Back to the menu before the computation finishes.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)

	msg := singleResultMsg{number: 100, pairs: goldbach.Pairs(100), elapsed: time.Millisecond}
	model, _ = app.Update(msg)
	app = model.(App)

	if app.single.isLoading {
		t.Fatal("single page stuck loading after its result arrived on the welcome page")
	}
	if !app.single.hasResult {
		t.Fatal("result delivered while another page was active was dropped")
	}
}

func TestApp_RangeResultLandsAfterLeavingPage(t *testing.T) {
	app := sized(t, NewApp(testOptions()))

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	app = model.(App)
	app.ranged.inputs[0].SetValue("4")
	app.ranged.inputs[1].SetValue("50")
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if !app.ranged.isLoading {
		t.Fatal("valid submit should enter loading state")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)

	msg := rangeResultMsg{
		start:    4,
		end:      50,
		analysis: goldbach.AnalyzeRange(4, 50),
		elapsed:  time.Millisecond,
	}
	model, _ = app.Update(msg)
	app = model.(App)

	if app.ranged.isLoading {
		t.Fatal("range page stuck loading after its result arrived on the welcome page")
	}
	if !app.ranged.hasResult {
		t.Fatal("result delivered while another page was active was dropped")
	}
}

func TestSinglePage_RejectsBadInput(t *testing.T) {
	cases := []struct {
		input   string
		wantErr string
	}{
		{"abc", "not a whole number"},
		{"7", "not an even number"},
		{"2", "not an even number"},
		{"2000000", "above the configured ceiling"},
	}

	for _, tc := range cases {
		m := NewSinglePageModel(DefaultStyles(), testOptions())
		m.SetSize(100, 30)
		m.input.SetValue(tc.input)

		m, cmd := m.handleSubmit()
		if cmd != nil {
			t.Errorf("input %q should not trigger analysis", tc.input)
		}
		if !strings.Contains(m.inputError, tc.wantErr) {
			t.Errorf("input %q: error %q, want substring %q", tc.input, m.inputError, tc.wantErr)
		}
		if !strings.Contains(m.View(), "Error:") {
			t.Errorf("input %q: view does not surface the error", tc.input)
		}
	}
}

func TestSinglePage_RendersResult(t *testing.T) {
	m := NewSinglePageModel(DefaultStyles(), testOptions())
	m.SetSize(100, 30)

	msg := singleResultMsg{
		number:  10,
		pairs:   goldbach.Pairs(10),
		elapsed: time.Millisecond,
	}
	m, _ = m.Update(msg)

	view := m.View()
	for _, want := range []string{"2 way(s)", "3 + 7 = 10", "5 + 5 = 10"} {
		if !strings.Contains(view, want) {
			t.Errorf("single result view missing %q", want)
		}
	}
}

func TestSinglePage_SubmitTriggersAnalysis(t *testing.T) {
	m := NewSinglePageModel(DefaultStyles(), testOptions())
	m.SetSize(100, 30)
	m.input.SetValue("100")

	m, cmd := m.handleSubmit()
	if !m.isLoading {
		t.Fatal("valid submit should enter loading state")
	}
	if cmd == nil {
		t.Fatal("valid submit should return a command")
	}
}

func TestRangePage_Validation(t *testing.T) {
	m := NewRangePageModel(DefaultStyles(), testOptions())
	m.SetSize(100, 30)

	m.inputs[0].SetValue("100")
	m.inputs[1].SetValue("10")
	m, _ = m.handleSubmit()
	if !strings.Contains(m.inputError, "below start") {
		t.Errorf("inverted range error = %q", m.inputError)
	}

	m.inputs[0].SetValue("4")
	m.inputs[1].SetValue("x")
	m, _ = m.handleSubmit()
	if !strings.Contains(m.inputError, "not a whole number") {
		t.Errorf("non-numeric end error = %q", m.inputError)
	}
}

func TestRangePage_RendersResult(t *testing.T) {
	m := NewRangePageModel(DefaultStyles(), testOptions())
	m.SetSize(100, 30)

	msg := rangeResultMsg{
		start:    4,
		end:      10,
		analysis: goldbach.AnalyzeRange(4, 10),
		elapsed:  time.Millisecond,
	}
	m, _ = m.Update(msg)

	if !m.hasResult {
		t.Fatal("result message should set hasResult")
	}

	content := m.renderResult(msg)
	for _, want := range []string{"Analyzed 4 even number(s)", "(2,2)", "(3,7) (5,5)"} {
		if !strings.Contains(content, want) {
			t.Errorf("range result missing %q", want)
		}
	}

	// The result carries a scatter of every decomposition across the range,
	// with the legend visible while the series count is small.
	if !strings.Contains(content, "●") {
		t.Error("range result missing scatter points")
	}
	if !strings.Contains(content, "Even number:") {
		t.Error("range result missing scatter legend for a small range")
	}
}

func TestFormatPairs_Truncation(t *testing.T) {
	pairs := goldbach.Pairs(210) // 19 decompositions
	got := formatPairs(pairs)
	if !strings.Contains(got, "more") {
		t.Errorf("long pair list should be truncated: %q", got)
	}

	if got := formatPairs(nil); got != "" {
		t.Errorf("empty pair list renders %q, want empty", got)
	}
}
