// Package sentiment is a lexicon scorer in the AFINN style: the score of a
// text is the sum of the valences of the words it contains.
package sentiment

import (
	"strings"
)

// Analyzer scores free text. Implementations must be deterministic for a
// given input.
type Analyzer interface {
	Analyze(text string) Result
}

type Result struct {
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Tokens      []string `json:"tokens"`
	Words       []string `json:"words"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "cannot": true,
	"don't": true, "doesn't": true, "didn't": true, "isn't": true,
	"wasn't": true, "aren't": true, "won't": true, "can't": true,
	"shouldn't": true, "wouldn't": true, "couldn't": true,
}

type LexiconAnalyzer struct {
	lexicon Lexicon
}

func NewLexiconAnalyzer(lex Lexicon) *LexiconAnalyzer {
	return &LexiconAnalyzer{lexicon: lex}
}

func (a *LexiconAnalyzer) Analyze(text string) Result {
	tokens := Tokenize(text)
	res := Result{
		Tokens:   tokens,
		Words:    []string{},
		Positive: []string{},
		Negative: []string{},
	}

	for i, tok := range tokens {
		value, ok := a.lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 && negators[tokens[i-1]] {
			value = -value
		}

		res.Score += value
		res.Words = append(res.Words, tok)
		if value > 0 {
			res.Positive = append(res.Positive, tok)
		} else if value < 0 {
			res.Negative = append(res.Negative, tok)
		}
	}

	if len(tokens) > 0 {
		res.Comparative = float64(res.Score) / float64(len(tokens))
	}
	return res
}

const punctuation = ".,/#!?$%^&*;:{}=_`\"~()[]<>|\\+@"

// Tokenize lower-cases text, drops punctuation (apostrophes and hyphens
// stay) and splits on whitespace.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, strings.ToLower(text))

	return strings.Fields(cleaned)
}
