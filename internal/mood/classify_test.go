package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindguard/internal/models"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, VeryPositive},
		{4, VeryPositive},
		{3, Positive},
		{2, Positive},
		{1, Neutral},
		{0, Neutral},
		{-1, Negative},
		{-2, Negative},
		{-3, VeryNegative},
		{-4, VeryNegative},
		{-100, VeryNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.score), "score %d", tt.score)
	}
}

func TestLabelFloatBoundaries(t *testing.T) {
	assert.Equal(t, VeryPositive, LabelFloat(3.01))
	assert.Equal(t, Positive, LabelFloat(3.0))
	assert.Equal(t, Positive, LabelFloat(1.5))
	assert.Equal(t, Neutral, LabelFloat(-0.5))
	assert.Equal(t, Negative, LabelFloat(-1.0))
	assert.Equal(t, VeryNegative, LabelFloat(-3.0))
}

func TestColor(t *testing.T) {
	tests := []struct {
		score int
		want  models.ColorTag
	}{
		{3, models.ColorStrongPositive},
		{2, models.ColorMildPositive},
		{1, models.ColorMildPositive},
		{0, models.ColorNeutral},
		{-1, models.ColorMildNegative},
		{-2, models.ColorMildNegative},
		{-3, models.ColorStrongNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Color(tt.score), "score %d", tt.score)
	}
}

func TestColorAndLabelUseDifferentCutPoints(t *testing.T) {
	// 2 is "Positive" but only a mild color; 3 is still "Positive" with a strong color.
	assert.Equal(t, Positive, Label(2))
	assert.Equal(t, models.ColorMildPositive, Color(2))
	assert.Equal(t, Positive, Label(3))
	assert.Equal(t, models.ColorStrongPositive, Color(3))
}

func TestClassify(t *testing.T) {
	got := Classify(-5)
	assert.Equal(t, models.Mood{
		Label:    VeryNegative,
		ColorTag: models.ColorStrongNegative,
		Emoji:    "😞",
	}, got)

	assert.Equal(t, "😐", Classify(0).Emoji)
	assert.Equal(t, "😁", Classify(4).Emoji)
	assert.Equal(t, "🙂", ClassifyFloat(2.5).Emoji)
	assert.Equal(t, "🙁", ClassifyFloat(-1.5).Emoji)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, SuggestStronglyNegative, Suggest(-3))
	assert.Equal(t, SuggestMildlyNegative, Suggest(-1))
	assert.Equal(t, SuggestNeutral, Suggest(0))
	assert.Equal(t, SuggestNeutral, Suggest(2))
	assert.Equal(t, SuggestPositive, Suggest(3))
}
