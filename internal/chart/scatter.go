package chart

import (
	"fmt"
	"sort"
	"strings"

	"goldbach/internal/goldbach"
)

// ScatterOptions controls scatter plot geometry.
type ScatterOptions struct {
	Width       int // plot columns, excluding axis gutter
	Height      int // plot rows
	LegendLimit int // hide the legend above this many series; 0 means default
}

const (
	defaultScatterWidth  = 60
	defaultScatterHeight = 20
	defaultLegendLimit   = 10
)

func (o ScatterOptions) withDefaults() ScatterOptions {
	if o.Width <= 0 {
		o.Width = defaultScatterWidth
	}
	if o.Height <= 0 {
		o.Height = defaultScatterHeight
	}
	if o.LegendLimit <= 0 {
		o.LegendLimit = defaultLegendLimit
	}
	return o
}

// Scatter plots prime pairs for one or more even numbers: x is the smaller
// prime, y the larger. A dotted diagonal marks y = x, the symmetry boundary
// all pairs sit on or above. One color per even number; the legend is
// suppressed when there are more series than the legend limit, since it
// would dwarf the plot.
func Scatter(series map[int][]goldbach.Pair, opt ScatterOptions) string {
	opt = opt.withDefaults()

	nums := make([]int, 0, len(series))
	maxVal := 0
	for num, pairs := range series {
		if len(pairs) == 0 {
			continue
		}
		nums = append(nums, num)
		for _, p := range pairs {
			if p.P2 > maxVal {
				maxVal = p.P2
			}
		}
	}
	if len(nums) == 0 {
		return labelStyle.Render("(no pairs to plot)")
	}
	sort.Ints(nums)

	// Cell grid; rendered strings may carry ANSI codes so cells stay
	// one rune wide and are joined at the end.
	grid := make([][]string, opt.Height)
	for r := range grid {
		grid[r] = make([]string, opt.Width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	scaleX := func(v int) int { return v * (opt.Width - 1) / maxVal }
	scaleY := func(v int) int { return opt.Height - 1 - v*(opt.Height-1)/maxVal }

	// Diagonal first so points paint over it.
	diag := labelStyle.Render("·")
	for v := 0; v <= maxVal; v++ {
		grid[scaleY(v)][scaleX(v)] = diag
	}

	for i, num := range nums {
		dot := seriesStyle(i).Render("●")
		for _, p := range series[num] {
			grid[scaleY(p.P2)][scaleX(p.P1)] = dot
		}
	}

	var sb strings.Builder
	yTop := fmt.Sprintf("%d", maxVal)
	gutter := len(yTop)
	for r, row := range grid {
		label := strings.Repeat(" ", gutter)
		if r == 0 {
			label = yTop
		} else if r == opt.Height-1 {
			label = fmt.Sprintf("%*d", gutter, 0)
		}
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(axisStyle.Render("│"))
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", gutter))
	sb.WriteString(axisStyle.Render("└" + strings.Repeat("─", opt.Width)))
	sb.WriteString("\n")
	xAxis := fmt.Sprintf("%s0%s%d", strings.Repeat(" ", gutter+1), strings.Repeat(" ", max(1, opt.Width-1-len(fmt.Sprint(maxVal)))), maxVal)
	sb.WriteString(labelStyle.Render(xAxis))

	if len(nums) <= opt.LegendLimit {
		sb.WriteString("\n\n")
		sb.WriteString(legendTitle.Render("Even number:"))
		for i, num := range nums {
			sb.WriteString("  ")
			sb.WriteString(seriesStyle(i).Render("●"))
			sb.WriteString(fmt.Sprintf(" %d", num))
		}
	}

	return sb.String()
}
