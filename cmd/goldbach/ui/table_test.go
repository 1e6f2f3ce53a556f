package ui

import (
	"strings"
	"testing"
)

func TestTable_RendersHeadersAndRows(t *testing.T) {
	table := NewTable("Prime pairs", "p1", "p2")
	table.AddRow("3", "7")
	table.AddRow("5", "5")

	out := table.View(DefaultStyles())

	for _, want := range []string{"Prime pairs", "p1", "p2", "3", "7", "5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Header, divider, two rows, plus the title line.
	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Errorf("expected at least 4 lines, got %d:\n%s", len(lines), out)
	}
}

func TestTable_EmptyRendersNothing(t *testing.T) {
	table := NewTable("Empty", "a", "b")
	if out := table.View(DefaultStyles()); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestTable_NumericColumnsRightAlign(t *testing.T) {
	table := NewTable("", "pairs")
	table.AddRow("7")
	table.AddRow("12345")

	out := table.View(DefaultStyles())
	lines := strings.Split(out, "\n")

	// The short value lines up against the right edge of the column, under
	// the wide one.
	var short, wide string
	for _, line := range lines {
		if strings.Contains(line, "12345") {
			wide = line
		} else if strings.Contains(line, "7") && !strings.Contains(line, "pairs") {
			short = line
		}
	}
	if short == "" || wide == "" {
		t.Fatalf("rows not found in output:\n%s", out)
	}
	if strings.Index(short, "7")+1 != strings.Index(wide, "12345")+5 {
		t.Errorf("numeric column not right-aligned:\n%s", out)
	}
}

func TestTable_MixedColumnsKeepTextLeftAligned(t *testing.T) {
	table := NewTable("", "even", "decompositions")
	table.AddRow("10", "(3,7) (5,5)")
	table.AddRow("4", "(2,2)")

	out := table.View(DefaultStyles())
	lines := strings.Split(out, "\n")

	var first, second string
	for _, line := range lines {
		if strings.Contains(line, "(3,7)") {
			first = line
		}
		if strings.Contains(line, "(2,2)") {
			second = line
		}
	}
	if first == "" || second == "" {
		t.Fatalf("rows not found in output:\n%s", out)
	}
	if strings.Index(first, "(3,7)") != strings.Index(second, "(2,2)") {
		t.Errorf("text column should stay left-aligned:\n%s", out)
	}
}

func TestTable_ColumnWidthTracksWidestCell(t *testing.T) {
	table := NewTable("", "n")
	table.AddRow("123456")
	out := table.View(DefaultStyles())

	if !strings.Contains(out, "123456") {
		t.Errorf("wide cell truncated:\n%s", out)
	}
}
