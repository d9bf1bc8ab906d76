package ui

import (
	"fmt"
	"math"
	"strings"

	"mindguard/internal/models"
)

// chartLimit is the score range drawn on each side of the axis.
const chartLimit = 5.0

// renderBar draws score on a centered axis with half cells per side.
func renderBar(score float64, half int) string {
	clamped := math.Max(-chartLimit, math.Min(chartLimit, score))
	n := int(math.Round(math.Abs(clamped) / chartLimit * float64(half)))

	if clamped < 0 {
		return strings.Repeat(" ", half-n) + strings.Repeat("█", n) + "│" + strings.Repeat(" ", half)
	}
	return strings.Repeat(" ", half) + "│" + strings.Repeat("█", n) + strings.Repeat(" ", half-n)
}

// renderChart draws one row per day in series order.
func renderChart(series models.HistorySeries, half int) string {
	if len(series) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-7s %s\n", "", axisLabels(half)))
	for _, agg := range series {
		sb.WriteString(fmt.Sprintf("%-7s %s %5.1f (%d)\n",
			agg.DateKey, renderBar(agg.AverageScore, half), agg.AverageScore, agg.EntryCount))
	}
	return sb.String()
}

func axisLabels(half int) string {
	width := 2*half + 1
	label := []rune(strings.Repeat(" ", width))
	copy(label[0:], []rune("-5"))
	label[half] = '0'
	copy(label[width-1:], []rune("5"))
	return string(label)
}

// truncate shortens s to n runes and marks the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
