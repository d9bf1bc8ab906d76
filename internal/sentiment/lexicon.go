package sentiment

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Lexicon maps a lower-case word to its valence, -5 to 5.
type Lexicon map[string]int

// DefaultLexicon returns a fresh copy of the built-in word list.
func DefaultLexicon() (Lexicon, error) {
	return ParseLexicon(defaultLexiconYAML)
}

func ParseLexicon(data []byte) (Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("sentiment: parse lexicon: %w", err)
	}
	for word, score := range lex {
		if score < -5 || score > 5 {
			return nil, fmt.Errorf("sentiment: score %d for %q out of range", score, word)
		}
	}
	if lex == nil {
		lex = Lexicon{}
	}
	return lex, nil
}

func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sentiment: read lexicon %s: %w", path, err)
	}
	return ParseLexicon(data)
}

// Merge overrides lex with the words in extra.
func (lex Lexicon) Merge(extra Lexicon) {
	for word, score := range extra {
		lex[word] = score
	}
}
