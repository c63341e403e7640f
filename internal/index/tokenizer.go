package index

import (
	"strings"
	"unicode"
)

// Tokenize splits text into normalized terms: lowercased maximal runs of
// letters and digits. Empty or all-separator input yields no terms.
// Indexing and query parsing must both go through this function so that
// query terms and index terms agree on normalization.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var terms []string
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if b.Len() > 0 {
			terms = append(terms, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		terms = append(terms, b.String())
	}
	return terms
}
