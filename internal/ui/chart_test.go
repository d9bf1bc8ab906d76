package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mindguard/internal/models"
)

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "    │    ", renderBar(0, 4))
	assert.Equal(t, "    │████", renderBar(5, 4))
	assert.Equal(t, "    │██  ", renderBar(2.5, 4))
	assert.Equal(t, "████│    ", renderBar(-9, 4))
	assert.Equal(t, "   █│    ", renderBar(-1.5, 4))
}

func TestRenderChartKeepsSeriesOrder(t *testing.T) {
	out := renderChart(models.HistorySeries{
		{DateKey: "Apr 20", AverageScore: 1, EntryCount: 2},
		{DateKey: "Apr 18", AverageScore: -3.8, EntryCount: 5},
	}, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Apr 20"))
	assert.True(t, strings.HasPrefix(lines[2], "Apr 18"))
	assert.Contains(t, lines[2], "-3.8 (5)")
	assert.Empty(t, renderChart(nil, 10))
}

func TestAxisLabels(t *testing.T) {
	assert.Equal(t, "-5 0  5", axisLabels(3))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
	assert.Equal(t, "héł...", truncate("héłło", 3))
}
