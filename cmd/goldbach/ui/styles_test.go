package ui

import (
	"strings"
	"testing"
)

func TestThemes(t *testing.T) {
	light := LightTheme()
	if light.IsDark {
		t.Error("light theme marked dark")
	}

	dark := DarkTheme()
	if !dark.IsDark {
		t.Error("dark theme marked light")
	}

	if light.Primary == dark.Primary {
		t.Error("themes should flip the primary color")
	}
}

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("GOLDBACH_DARK_MODE", "")
	if DetectTheme().IsDark {
		t.Error("default should be light")
	}

	t.Setenv("GOLDBACH_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Error("GOLDBACH_DARK_MODE=1 should select dark")
	}

	t.Setenv("GOLDBACH_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("dark COLORFGBG background should select dark")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	out := s.RenderDivider(10)
	if strings.Count(out, "─") != 10 {
		t.Errorf("divider width wrong: %q", out)
	}
}
