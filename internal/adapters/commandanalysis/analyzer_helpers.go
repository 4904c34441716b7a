package commandanalysis

import (
	"strings"
	"unicode"
)

// maxSimpleWords is the longest command (executable plus arguments) still treated as simple.
const maxSimpleWords = 5

// splitWords splits on unquoted whitespace. Double quotes group words and a
// backslash takes the next rune literally.
func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

/*
isComplex reports whether a command is a poor fit for a short alias.

A command is complex if it has more than maxSimpleWords words or contains one
of the shell metacharacters | & ; < > ( ).
*/
func isComplex(s string, words []string) bool {
	return len(words) > maxSimpleWords || strings.ContainsAny(s, "|&;<>()")
}
