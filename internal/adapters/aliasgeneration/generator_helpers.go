package aliasgeneration

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

// Generated aliases are kept alphanumeric even though users may register more.
var generatedAliasCharsRegex = regexp.MustCompile(`^[a-z0-9]+$`)

const (
	minGeneratedLength = 2
	maxAbbreviation    = 3
)

/*
isProposedNameValid checks the rules every generated alias must pass.

It verifies that the alias has a minimum length, is alphanumeric, differs from
the component's primary name, was not proposed earlier in this run and is not
registered already.
*/
func (g *AliasGenerator) isProposedNameValid(
	proposed string,
	primaryName string,
	taken ports.NameChecker,
	proposedInThisRun map[string]bool,
) bool {
	if len(proposed) < minGeneratedLength {
		return false
	}
	if !generatedAliasCharsRegex.MatchString(proposed) {
		return false
	}
	if proposed == strings.ToLower(primaryName) {
		return false
	}
	if proposedInThisRun[proposed] {
		return false
	}
	return taken == nil || !taken.Has(proposed)
}

// splitSegments splits a component name on separators and camel case boundaries.
func splitSegments(name string) []string {
	var segments []string
	var current strings.Builder
	var prev rune
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if current.Len() > 0 {
				segments = append(segments, current.String())
				current.Reset()
			}
		case unicode.IsUpper(r) && unicode.IsLower(prev) && current.Len() > 0:
			segments = append(segments, current.String())
			current.Reset()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}
	return segments
}

// segmentInitials joins the first letter of every segment. Single segment names yield "".
func segmentInitials(name string) string {
	segments := splitSegments(name)
	if len(segments) < 2 {
		return ""
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteRune(unicode.ToLower([]rune(s)[0]))
	}
	return b.String()
}

// consonantAbbreviation keeps the first letter and the following consonants,
// up to maxAbbreviation letters.
func consonantAbbreviation(name string) string {
	segments := splitSegments(name)
	if len(segments) != 1 {
		return ""
	}
	var b strings.Builder
	for i, r := range strings.ToLower(segments[0]) {
		if i == 0 || (unicode.IsLetter(r) && !strings.ContainsRune("aeiou", r)) {
			b.WriteRune(r)
			if b.Len() >= maxAbbreviation {
				break
			}
		}
	}
	if b.Len() < maxAbbreviation {
		return ""
	}
	return b.String()
}

// leadingLetters returns the first n letters or digits of name, lower-cased.
func leadingLetters(name string, n int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == n {
				return b.String()
			}
		}
	}
	return ""
}

// commandInitials derives an alias from the component's command. Complex
// commands and commands with a single word yield "".
func (g *AliasGenerator) commandInitials(commandLine string) string {
	if g.analyzer == nil || strings.TrimSpace(commandLine) == "" {
		return ""
	}
	analyzed := g.analyzer.Analyze(commandLine)
	if analyzed.Complex {
		return ""
	}
	return analyzed.Initials()
}
