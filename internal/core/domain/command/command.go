package command

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Analysis is the result of splitting a component's command line.
type Analysis struct {
	Original   string
	Executable string   // first word, without a leading "./"
	Args       []string // remaining words, quotes stripped
	Complex    bool     // pipelines, redirections or long argument lists
}

// Initials returns the first letter of the executable followed by the first
// letter of each non-flag argument, lower-cased.
func (a Analysis) Initials() string {
	if a.Executable == "" {
		return ""
	}
	var b strings.Builder
	b.WriteRune(firstLower(a.Executable))
	for _, arg := range a.Args {
		if arg == "" || strings.HasPrefix(arg, "-") {
			continue
		}
		b.WriteRune(firstLower(arg))
	}
	return b.String()
}

func firstLower(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.ToLower(r)
}
