package normalize

import (
	"strings"

	"cleanser/domain/dataset"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// companySuffixes are cut in this order; each cut drops everything from the
// first occurrence onward.
var companySuffixes = []string{"Inc", "Corporation", "Corp", "LLC", "Ltd", "Limited"}

// Commas and hyphens are dropped without a space, joining hyphenated words.
var punctuationRemover = runes.Remove(runes.Predicate(func(r rune) bool {
	return r == ',' || r == '-'
}))

// CompanyName normalizes a company name. The result may be empty when the
// whole name was parenthetical or a suffix.
func CompanyName(name string) string {
	name = strings.TrimSpace(StripParentheses(name))

	for _, suffix := range companySuffixes {
		if i := strings.Index(name, suffix); i >= 0 {
			name = name[:i]
		}
	}

	name, _, _ = transform.String(punctuationRemover, name)
	name = strings.TrimSpace(name)

	// All-caps words are taken to be abbreviations.
	return mapWords(name, func(w string) string {
		if IsUpper(w) {
			return w
		}
		return Capitalize(w)
	})
}

// FormatCompanyName applies CompanyName to string values; anything else is
// returned unchanged.
func FormatCompanyName(v dataset.Value) dataset.Value {
	if !v.IsString() {
		return v
	}
	return dataset.NewStringValue(CompanyName(v.Text()))
}

// StripParentheses drops every parenthesised span, nested spans included.
// A ")" with no open "(" is ordinary text and is kept.
func StripParentheses(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
