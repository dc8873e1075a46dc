package titlecase

import (
	"fmt"
	"strings"

	"titlebot/utils/stringutil"
)

// Strategy is the capitalization applied to a single word
type Strategy int

const (
	// Capitalize upper-cases the first character
	Capitalize Strategy = iota
	// DoNotUpcase leaves the word as it is
	DoNotUpcase
	// UpcaseLater upper-cases the first ASCII letter or digit, skipping leading symbols
	UpcaseLater
	// UpcaseDashed capitalizes every hyphen-separated part that is not a small word
	UpcaseDashed
	// UpcaseSlashed capitalizes every slash-separated part
	UpcaseSlashed
)

var strategyNames = [...]string{
	Capitalize:    "capitalize",
	DoNotUpcase:   "do_not_upcase",
	UpcaseLater:   "upcase_later",
	UpcaseDashed:  "upcase_dashed",
	UpcaseSlashed: "upcase_slashed",
}

// String returns the name of the strategy
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// MarshalText encodes the strategy by name
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("unknown strategy %d", int(s))
	}
	return []byte(strategyNames[s]), nil
}

// UnmarshalText decodes a strategy name produced by MarshalText
func (s *Strategy) UnmarshalText(text []byte) error {
	for i, name := range strategyNames {
		if name == string(text) {
			*s = Strategy(i)
			return nil
		}
	}
	return fmt.Errorf("unknown strategy %q", text)
}

// Apply rewrites word according to the strategy. Only letter case changes.
func (s Strategy) Apply(word string) string {
	switch s {
	case Capitalize:
		return stringutil.UpcaseFirst(word)
	case UpcaseLater:
		return stringutil.UpcaseFirstAlnum(word)
	case UpcaseDashed:
		return upcaseParts(word, "-", true)
	case UpcaseSlashed:
		return upcaseParts(word, "/", false)
	default:
		return word
	}
}

// upcaseParts capitalizes each sep-separated part of word. Empty parts are
// kept so leading and trailing separators survive.
//
// step-by-step => Step-by-Step, before/after => Before/After
func upcaseParts(word, sep string, keepSmall bool) string {
	parts := strings.Split(word, sep)
	for i, part := range parts {
		if keepSmall && IsSmallWord(part) {
			continue
		}
		parts[i] = stringutil.UpcaseFirst(part)
	}
	return strings.Join(parts, sep)
}
