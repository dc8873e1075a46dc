// Package stringutil provides string manipulation utilities
package stringutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpcaseFirst upper-cases the first rune of s and leaves the rest untouched
func UpcaseFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// UpcaseFirstAlnum upper-cases the first ASCII letter or digit in s, wherever it is.
// "__foo" becomes "__Foo".
func UpcaseFirstAlnum(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIIAlnum(c) {
			if 'a' <= c && c <= 'z' {
				return s[:i] + string(c-'a'+'A') + s[i+1:]
			}
			return s
		}
	}
	return s
}

// IsSpace reports whether r is ASCII whitespace
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Fields splits s around runs of ASCII whitespace
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}

// TrimSpace removes leading and trailing ASCII whitespace and NUL bytes
func TrimSpace(s string) string {
	return strings.Trim(s, " \t\n\v\f\r\x00")
}

// HasUpperASCII reports whether s contains an ASCII uppercase letter
func HasUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
