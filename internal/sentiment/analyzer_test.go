package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *LexiconAnalyzer {
	t.Helper()
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	return NewLexiconAnalyzer(lex)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"i", "don't", "feel", "great", "today"},
		Tokenize("I don't feel GREAT, today!!!"))
	assert.Empty(t, Tokenize("  ...  "))
}

func TestAnalyze_SumsWordScores(t *testing.T) {
	a := newTestAnalyzer(t)

	res := a.Analyze("What a wonderful, happy day")

	assert.Equal(t, 7, res.Score)
	assert.Equal(t, []string{"wonderful", "happy"}, res.Words)
	assert.Equal(t, []string{"wonderful", "happy"}, res.Positive)
	assert.Empty(t, res.Negative)
	assert.InDelta(t, 7.0/5.0, res.Comparative, 1e-9)
}

func TestAnalyze_Negative(t *testing.T) {
	a := newTestAnalyzer(t)

	res := a.Analyze("I feel sad and lonely, this is terrible.")

	assert.Equal(t, -7, res.Score)
	assert.Equal(t, []string{"sad", "lonely", "terrible"}, res.Negative)
}

func TestAnalyze_Negation(t *testing.T) {
	a := newTestAnalyzer(t)

	res := a.Analyze("I am not happy")

	assert.Equal(t, -3, res.Score)
	assert.Equal(t, []string{"happy"}, res.Words)
	assert.Equal(t, []string{"happy"}, res.Negative)
}

func TestAnalyze_NeutralAndEmpty(t *testing.T) {
	a := newTestAnalyzer(t)

	res := a.Analyze("The train leaves at noon")
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Words)

	res = a.Analyze("")
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0.0, res.Comparative)
}

func TestAnalyze_EverydayWords(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		text string
		want int
	}{
		{"I like it", 2},
		{"yes", 1},
		{"no", -1},
		{"yeah this is boring", -2},
		{"no chance", -3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Analyze(tt.text).Score, tt.text)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "Great start, awful middle, amazing end"

	assert.Equal(t, a.Analyze(text), a.Analyze(text))
}

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon([]byte("sunny: 2\nrainy: -1\n"))
	require.NoError(t, err)
	assert.Equal(t, Lexicon{"sunny": 2, "rainy": -1}, lex)

	_, err = ParseLexicon([]byte("ecstatic: 9\n"))
	assert.Error(t, err)

	_, err = ParseLexicon([]byte("not: [valid"))
	assert.Error(t, err)

	lex, err = ParseLexicon(nil)
	require.NoError(t, err)
	assert.NotNil(t, lex)
}

func TestLexiconMerge(t *testing.T) {
	lex, err := DefaultLexicon()
	require.NoError(t, err)

	lex.Merge(Lexicon{"good": 5, "meh": -1})

	res := NewLexiconAnalyzer(lex).Analyze("good but meh")
	assert.Equal(t, 4, res.Score)
}
