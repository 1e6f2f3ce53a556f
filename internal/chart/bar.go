package chart

import (
	"fmt"
	"sort"
	"strings"
)

// BarOptions controls bar chart geometry.
type BarOptions struct {
	MaxBarWidth int // widest bar in cells; 0 means default
}

const defaultMaxBarWidth = 50

// Bar renders pair counts per even number as horizontal bars, one row per
// even number in ascending order, the exact count annotated after each bar.
// Bars scale to the largest count so the chart fits any terminal width.
func Bar(counts map[int]int, opt BarOptions) string {
	if opt.MaxBarWidth <= 0 {
		opt.MaxBarWidth = defaultMaxBarWidth
	}

	nums := make([]int, 0, len(counts))
	maxCount := 0
	for num, count := range counts {
		nums = append(nums, num)
		if count > maxCount {
			maxCount = count
		}
	}
	if len(nums) == 0 {
		return labelStyle.Render("(nothing to chart)")
	}
	sort.Ints(nums)

	numWidth := len(fmt.Sprint(nums[len(nums)-1]))

	var sb strings.Builder
	for i, num := range nums {
		count := counts[num]
		width := 0
		if maxCount > 0 {
			width = count * opt.MaxBarWidth / maxCount
		}
		if count > 0 && width == 0 {
			width = 1 // nonzero counts always get a visible bar
		}

		sb.WriteString(labelStyle.Render(fmt.Sprintf("%*d ", numWidth, num)))
		sb.WriteString(axisStyle.Render("│"))
		sb.WriteString(seriesStyle(i).Render(strings.Repeat("█", width)))
		sb.WriteString(valueStyle.Render(fmt.Sprintf(" %d", count)))
		if i < len(nums)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
