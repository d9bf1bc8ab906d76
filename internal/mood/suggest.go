package mood

const (
	SuggestStronglyNegative = "This content appears quite negative. Consider taking a break or engaging with more positive content."
	SuggestMildlyNegative   = "This has some negative elements. Be mindful of how it affects your mood."
	SuggestPositive         = "This content is positive! It can help maintain a good emotional state."
	SuggestNeutral          = "This content is fairly neutral in emotional tone."
)

// Suggest picks the advisory message shown under an analysis result.
func Suggest(score int) string {
	if score < -2 {
		return SuggestStronglyNegative
	} else if score < 0 {
		return SuggestMildlyNegative
	} else if score > 2 {
		return SuggestPositive
	}
	return SuggestNeutral
}
