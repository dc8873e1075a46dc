package titlecase

import (
	"regexp"
	"sort"
	"strings"
)

// smallWords is the vocabulary of minor words kept lowercase inside a title
var smallWords = []string{
	"a", "an", "and", "as", "at",
	"but", "by",
	"en",
	"for",
	"if", "in",
	"of", "on", "or",
	"the", "to",
	"v", "v.", "vs", "vs.",
}

var reSmallWord = compileSmallWords(smallWords)

// SmallWords returns a copy of the small-word vocabulary
func SmallWords() []string {
	return append([]string(nil), smallWords...)
}

func compileSmallWords(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	// Longest first so "vs." is tried before "vs" and "v"
	sort.SliceStable(quoted, func(i, j int) bool {
		return len(quoted[i]) > len(quoted[j])
	})
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// IsSmallWord reports whether word contains a small word delimited by word
// boundaries. Matching is case-sensitive, so "a," and "(or:" are small words
// but "The" and "On" are not.
func IsSmallWord(word string) bool {
	return reSmallWord.MatchString(word)
}
