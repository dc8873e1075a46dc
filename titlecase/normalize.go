package titlecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"titlebot/utils/stringutil"
)

var (
	// spaceReplacer turns tabs and non-breaking hyphens (U+2011) into regular spaces
	spaceReplacer = strings.NewReplacer("\t", " ", "\u2011", " ")

	// reShouting matches strings made only of uppercase letters, whitespace and
	// non-word characters. Any lowercase letter, digit or underscore breaks it.
	reShouting = regexp.MustCompile(`^[A-Z\s\W]+$`)
)

// normalize prepares raw input for tokenizing. The result is "" when raw
// holds nothing but whitespace.
func normalize(raw string) string {
	s := stringutil.TrimSpace(spaceReplacer.Replace(raw))
	if s == "" {
		return ""
	}
	if reShouting.MatchString(s) {
		// Casers keep state, so a fresh one is built per call
		s = cases.Lower(language.Und).String(s)
	}
	return s
}

// Tokens returns the words String would classify: s normalized and split on
// whitespace.
func Tokens(s string) []string {
	return stringutil.Fields(normalize(s))
}
