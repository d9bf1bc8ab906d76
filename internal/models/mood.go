package models

type ColorTag string

const (
	ColorStrongPositive ColorTag = "strong-positive"
	ColorMildPositive   ColorTag = "mild-positive"
	ColorNeutral        ColorTag = "neutral"
	ColorMildNegative   ColorTag = "mild-negative"
	ColorStrongNegative ColorTag = "strong-negative"
)

type Mood struct {
	Label    string   `json:"label"`
	ColorTag ColorTag `json:"color_tag"`
	Emoji    string   `json:"emoji"`
}
