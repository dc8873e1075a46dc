// Package titlecase converts sentences to headline-style title case.
//
// Major words are capitalized and small words (articles, short conjunctions
// and prepositions) are left lowercase, except as the first or last word of
// the sentence or right after a word ending in a colon. Words that already
// carry capitals after their first letter (iPhone, NBC, AT&T), words with
// inner dots (someone@gmail.com, foo.bar.1001), URLs and absolute paths are
// left untouched. Hyphenated and slashed compounds are capitalized part by
// part, and words opening with a quote, bracket or underscore get their first
// letter or digit capitalized.
//
// Input that is entirely uppercase is treated as shouting and lowercased
// before any of the above is applied.
//
// All functions are safe for concurrent use.
package titlecase

import (
	"strings"
)

// String returns s in title case. Tabs and non-breaking hyphens become
// spaces, runs of whitespace collapse to a single space and the ends are
// trimmed. Whitespace-only input yields "".
func String(s string) string {
	words := Tokens(s)
	if len(words) == 0 {
		return ""
	}
	for i, strategy := range Classify(words) {
		words[i] = strategy.Apply(words[i])
	}
	return strings.Join(words, " ")
}

// Ptr is String for optional input; a nil pointer is treated as "".
func Ptr(s *string) string {
	if s == nil {
		return ""
	}
	return String(*s)
}

// Word records how a single token was rewritten
type Word struct {
	Input    string   `json:"input"`
	Strategy Strategy `json:"strategy"`
	Output   string   `json:"output"`
}

// Explain returns the per-token breakdown of String(s). Joining the Output
// fields with single spaces gives String(s).
func Explain(s string) []Word {
	words := Tokens(s)
	if len(words) == 0 {
		return nil
	}
	explained := make([]Word, len(words))
	for i, strategy := range Classify(words) {
		explained[i] = Word{
			Input:    words[i],
			Strategy: strategy,
			Output:   strategy.Apply(words[i]),
		}
	}
	return explained
}
