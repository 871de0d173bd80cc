package normalize

import (
	"regexp"
	"strings"

	"cleanser/domain/dataset"
)

// rule is one step of an ordered rewrite list. match is evaluated against the
// title as it stands when the rule is reached.
type rule struct {
	name  string
	match func(string) bool
	apply func(string) string
}

const (
	cisoLong  = "Chief Information Security Officer"
	cisoParen = "(CISO)"
	ciso      = "CISO"
)

var (
	headOfITSecurityPattern = regexp.MustCompile(`(?i)Head.*?IT.*?(Cyber|Security).*`)
	headOfITPattern         = regexp.MustCompile(`(?i)Head.*?IT.*`)

	// Words kept lower case by the capitalization pass.
	minorWords = map[string]bool{
		"of": true, "and": true, "in": true, "on": true, "at": true, "for": true, "to": true,
	}
)

// titleRules are evaluated top to bottom; the first match decides the result.
// Titles matching none of them get the capitalization pass.
var titleRules = []rule{
	{
		name:  "director",
		match: func(t string) bool { return strings.Contains(t, "Director") },
		apply: rewriteDirector,
	},
	{
		name:  "ciso",
		match: func(t string) bool { return containsAny(t, ciso, cisoLong) },
		apply: func(t string) string {
			if strings.Contains(t, "CIO") {
				return "CIO and CISO"
			}
			return "CISO"
		},
	},
	{
		name:  "head-of-it",
		match: isHeadOfIT,
		apply: func(t string) string {
			if mentionsSecurity(t) {
				return "Head of IT Security"
			}
			return "Head of IT"
		},
	},
}

// directorRules are not exclusive: each one whose predicate holds is applied
// to the output of the previous one.
var directorRules = []rule{
	{
		name:  "ciso-suffix",
		match: func(t string) bool { return containsAny(t, cisoLong, cisoParen, ciso) },
		apply: moveCISOToEnd,
	},
	{
		name:  "head-of-it",
		match: isHeadOfIT,
		apply: shortenHeadOfIT,
	},
}

// JobTitle normalizes a job title.
func JobTitle(title string) string {
	for _, r := range titleRules {
		if r.match(title) {
			return r.apply(title)
		}
	}
	return capitalizeTitle(title)
}

// TitleRule names the rule JobTitle would apply to title: "director",
// "ciso", "head-of-it" or "capitalize".
func TitleRule(title string) string {
	for _, r := range titleRules {
		if r.match(title) {
			return r.name
		}
	}
	return "capitalize"
}

// FormatJobTitle applies JobTitle to string values; anything else is returned
// unchanged.
func FormatJobTitle(v dataset.Value) dataset.Value {
	if !v.IsString() {
		return v
	}
	return dataset.NewStringValue(JobTitle(v.Text()))
}

func rewriteDirector(title string) string {
	for _, r := range directorRules {
		if r.match(title) {
			title = r.apply(title)
		}
	}
	return title
}

func moveCISOToEnd(title string) string {
	title = strings.ReplaceAll(title, cisoLong, "")
	title = strings.ReplaceAll(title, cisoParen, "")
	title = strings.ReplaceAll(title, ciso, "")
	title = strings.TrimSpace(title)
	return strings.TrimSpace(title + " CISO")
}

func shortenHeadOfIT(title string) string {
	if mentionsSecurity(title) {
		return headOfITSecurityPattern.ReplaceAllLiteralString(title, "Head of IT Security")
	}
	return headOfITPattern.ReplaceAllLiteralString(title, "Head of IT")
}

func isHeadOfIT(title string) bool {
	return strings.Contains(title, "Head") && containsAny(title, "IT", "Information Technology")
}

func mentionsSecurity(title string) bool {
	lower := lowerCase(title)
	return strings.Contains(lower, "cyber") || strings.Contains(lower, "security")
}

func capitalizeTitle(title string) string {
	title = mapWords(title, func(w string) string {
		lower := lowerCase(w)
		if minorWords[lower] {
			return lower
		}
		return Capitalize(w)
	})
	// Second pass so "It" from the first pass becomes "IT".
	return mapWords(title, func(w string) string {
		if lowerCase(w) == "it" {
			return "IT"
		}
		return w
	})
}
