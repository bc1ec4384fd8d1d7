package keywords

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and collapses runs of whitespace to single
// spaces. Every downstream matcher operates on normalized text.
func Normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(lower))
	lastSpace := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}

// Tokenize splits normalized text into lowercase word tokens. Letters,
// digits, and a few intra-word joiners (+ # . -) survive so terms like
// "c++", "c#", and "node.js" stay whole; leading and trailing punctuation
// is trimmed from each token.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			r != '+' && r != '#' && r != '.' && r != '-' && r != '/'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".-/")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
