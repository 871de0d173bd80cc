// Package normalize rewrites free-text lead fields (job titles and company
// names) into a consistent, mail-merge friendly form.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful, so each call builds its own.
func lowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

func titleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Capitalize title-cases the first character of word and lower-cases the
// rest, using full Unicode case mappings: "vp" -> "Vp", "SALES" -> "Sales",
// "ﬁnance" -> "Finance", "ΣΑΣ" -> "Σας".
func Capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	// Lowered whole so a trailing sigma takes its final form.
	rest, ok := strings.CutPrefix(lowerCase(word), lowerCase(word[:size]))
	if !ok {
		rest = lowerCase(word[size:])
	}
	return titleCase(word[:size]) + rest
}

// IsUpper reports whether word has at least one cased letter and every cased
// letter is upper case. "IBM" and "3M" are upper, "123" and "Aª" are not.
func IsUpper(word string) bool {
	cased := false
	for _, r := range word {
		switch {
		case unicode.In(r, unicode.Ll, unicode.Lt, unicode.Other_Lowercase):
			return false
		case unicode.In(r, unicode.Lu, unicode.Other_Uppercase):
			cased = true
		}
	}
	return cased
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func mapWords(s string, fn func(string) string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = fn(w)
	}
	return strings.Join(words, " ")
}
