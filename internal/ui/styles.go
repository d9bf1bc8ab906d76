package ui

import (
	"github.com/charmbracelet/lipgloss"

	"mindguard/internal/models"
)

var (
	StrongPositive = lipgloss.Color("#16a34a") // green-600
	MildPositive   = lipgloss.Color("#4ade80") // green-400
	NeutralYellow  = lipgloss.Color("#eab308") // yellow-500
	MildNegative   = lipgloss.Color("#f87171") // red-400
	StrongNegative = lipgloss.Color("#dc2626") // red-600
	Accent         = lipgloss.Color("#3b82f6") // blue-500
	Muted          = lipgloss.Color("#6b7280") // gray-500
)

type Styles struct {
	Card     lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Callout  lipgloss.Style
	Bar      lipgloss.Style
	Nav      lipgloss.Style
	NavOn    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Plain    lipgloss.Style
}

func NewStyles(theme models.Theme) Styles {
	fg, card := lipgloss.Color("#f9fafb"), lipgloss.Color("#1f2937")
	if theme == models.ThemeLight {
		fg, card = lipgloss.Color("#111827"), lipgloss.Color("#ffffff")
	}

	return Styles{
		Card: lipgloss.NewStyle().
			Foreground(fg).
			Background(card).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(fg).MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(fg),
		Body:     lipgloss.NewStyle().Foreground(fg),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Callout:  lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(Accent).PaddingLeft(1),
		Bar:      lipgloss.NewStyle().Foreground(Accent),
		Nav:      lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		NavOn:    lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true).Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(StrongPositive),
		Error:    lipgloss.NewStyle().Foreground(StrongNegative),
		Positive: lipgloss.NewStyle().Foreground(StrongPositive),
		Negative: lipgloss.NewStyle().Foreground(StrongNegative),
		Plain:    lipgloss.NewStyle().Foreground(Muted),
	}
}

// MoodStyle colors text by the classifier's color tag.
func MoodStyle(tag models.ColorTag) lipgloss.Style {
	var c lipgloss.Color
	switch tag {
	case models.ColorStrongPositive:
		c = StrongPositive
	case models.ColorMildPositive:
		c = MildPositive
	case models.ColorMildNegative:
		c = MildNegative
	case models.ColorStrongNegative:
		c = StrongNegative
	default:
		c = NeutralYellow
	}
	return lipgloss.NewStyle().Foreground(c)
}
