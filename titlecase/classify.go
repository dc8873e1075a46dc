package titlecase

import (
	"strings"

	"github.com/charlievieth/strcase"

	"titlebot/utils/stringutil"
)

// token is a word with rune-based views used by the classification rules
type token struct {
	text  string
	runes []rune
}

func newToken(text string) token {
	return token{text: text, runes: []rune(text)}
}

// first returns the first character of the token
func (t token) first() rune {
	if len(t.runes) == 0 {
		return 0
	}
	return t.runes[0]
}

// tail returns the token without its first character
func (t token) tail() string {
	if len(t.runes) < 2 {
		return ""
	}
	return string(t.runes[1:])
}

// inner returns the token without its first and last two characters
func (t token) inner() string {
	if len(t.runes) < 4 {
		return ""
	}
	return string(t.runes[1 : len(t.runes)-2])
}

// rule assigns strategy to the token at index i when match holds
type rule struct {
	name     string
	strategy Strategy
	match    func(tokens []token, i int) bool
}

// rules are evaluated in order for every token and the last match wins
var rules = []rule{
	{
		// Small words stay lowercase unless first, last or right after a colon
		name:     "small word",
		strategy: DoNotUpcase,
		match: func(tokens []token, i int) bool {
			return i != 0 && i != len(tokens)-1 &&
				IsSmallWord(tokens[i].text) &&
				!strings.HasSuffix(tokens[i-1].text, ":")
		},
	},
	{
		name:     "leading quote or bracket",
		strategy: UpcaseLater,
		match: func(tokens []token, i int) bool {
			return strings.ContainsRune(`(_'"`, tokens[i].first())
		},
	},
	{
		name:     "dashed",
		strategy: UpcaseDashed,
		match: func(tokens []token, i int) bool {
			return strings.Contains(tokens[i].text, "-")
		},
	},
	{
		name:     "slashed",
		strategy: UpcaseSlashed,
		match: func(tokens []token, i int) bool {
			return strings.Contains(tokens[i].tail(), "/")
		},
	},
	{
		name:     "path",
		strategy: DoNotUpcase,
		match: func(tokens []token, i int) bool {
			return tokens[i].first() == '/'
		},
	},
	{
		name:     "url",
		strategy: DoNotUpcase,
		match: func(tokens []token, i int) bool {
			return strcase.Contains(tokens[i].text, "http://") ||
				strcase.Contains(tokens[i].text, "https://")
		},
	},
	{
		// iPhone, AT&T, TheStreet.com, foo.bar.1001
		name:     "inner capitals or dots",
		strategy: DoNotUpcase,
		match: func(tokens []token, i int) bool {
			return stringutil.HasUpperASCII(tokens[i].tail()) ||
				strings.ContainsAny(tokens[i].inner(), ".&")
		},
	},
}

// Classify returns the strategy for each word, in order. Words are expected
// to be normalized and free of whitespace, as returned by Tokens.
func Classify(words []string) []Strategy {
	tokens := make([]token, len(words))
	for i, w := range words {
		tokens[i] = newToken(w)
	}

	strategies := make([]Strategy, len(tokens))
	for i := range tokens {
		strategies[i] = Capitalize
		for _, r := range rules {
			if r.match(tokens, i) {
				strategies[i] = r.strategy
			}
		}
	}
	return strategies
}
