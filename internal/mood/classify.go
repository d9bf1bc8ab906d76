// Package mood buckets sentiment scores into the labels, colors and advice
// shown to the user. Every chain is evaluated top to bottom and the first
// matching branch wins, so the order of the branches must not change.
package mood

import "mindguard/internal/models"

const (
	VeryPositive = "Very Positive"
	Positive     = "Positive"
	Neutral      = "Neutral"
	Negative     = "Negative"
	VeryNegative = "Very Negative"
)

// Label maps a score to one of the five mood labels.
func Label(score int) string {
	return LabelFloat(float64(score))
}

// LabelFloat is Label for fractional scores such as daily averages.
func LabelFloat(score float64) string {
	if score > 3 {
		return VeryPositive
	}
	if score > 1 {
		return Positive
	}
	if score > -1 {
		return Neutral
	}
	if score > -3 {
		return Negative
	}
	return VeryNegative
}

// Color uses its own cut points, they do not line up with Label.
func Color(score int) models.ColorTag {
	return ColorFloat(float64(score))
}

func ColorFloat(score float64) models.ColorTag {
	if score > 2 {
		return models.ColorStrongPositive
	}
	if score < -2 {
		return models.ColorStrongNegative
	}
	if score > 0 {
		return models.ColorMildPositive
	}
	if score < 0 {
		return models.ColorMildNegative
	}
	return models.ColorNeutral
}

func Emoji(score int) string {
	return EmojiFloat(float64(score))
}

func EmojiFloat(score float64) string {
	if score > 3 {
		return "😁"
	}
	if score > 1 {
		return "🙂"
	}
	if score > -1 {
		return "😐"
	}
	if score > -3 {
		return "🙁"
	}
	return "😞"
}

func Classify(score int) models.Mood {
	return ClassifyFloat(float64(score))
}

func ClassifyFloat(score float64) models.Mood {
	return models.Mood{
		Label:    LabelFloat(score),
		ColorTag: ColorFloat(score),
		Emoji:    EmojiFloat(score),
	}
}
