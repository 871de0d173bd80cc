package normalize

import (
	"testing"

	"cleanser/domain/dataset"

	"github.com/stretchr/testify/assert"
)

func TestCompanyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "parenthetical and suffix", input: "Acme (Holdings) Inc.", want: "Acme"},
		{name: "abbreviation kept", input: "IBM Corp", want: "IBM"},
		{name: "corporation", input: "Microsoft Corporation", want: "Microsoft"},
		{name: "nested parentheses", input: "Foo (Bar (Baz)) Ltd", want: "Foo"},
		{name: "stray closing paren kept", input: "Foo) Bar", want: "Foo) Bar"},
		{name: "unclosed paren drops the tail", input: "Acme (unclosed", want: "Acme"},
		{name: "only parenthetical", input: "(Stealth)", want: ""},
		{name: "suffixes are case sensitive", input: "acme widgets, llc", want: "Acme Widgets Llc"},
		{name: "suffix inside a word", input: "Incredible Health", want: ""},
		{name: "hyphen removed", input: "Coca-Cola Company", want: "Cocacola Company"},
		{name: "ampersand abbreviation", input: "AT&T", want: "AT&T"},
		{name: "mixed case recapitalized", input: "deLoitte consulting", want: "Deloitte Consulting"},
		{name: "digits only word", input: "3m 123", want: "3m 123"},
		{name: "comma before suffix", input: "Globex, LLC", want: "Globex"},
		{name: "limited", input: "Tata Consultancy Services Limited", want: "Tata Consultancy Services"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanyName(tt.input))
		})
	}
}

func TestStripParentheses(t *testing.T) {
	assert.Equal(t, "a  d", StripParentheses("a (b (c)) d"))
	assert.Equal(t, "a) b", StripParentheses("a) b"))
	assert.Equal(t, "x", StripParentheses("x(y"))
	assert.Equal(t, "", StripParentheses("((()))"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Vp", Capitalize("vp"))
	assert.Equal(t, "Sales", Capitalize("SALES"))
	assert.Equal(t, "(ciso)", Capitalize("(CISO)"))
	assert.Equal(t, "Émile", Capitalize("éMILE"))
	assert.Equal(t, "", Capitalize(""))
}

func TestCapitalize_FullCaseMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "ﬁnance", want: "Finance"},
		{input: "ß", want: "Ss"},
		{input: "straße", want: "Straße"},
		{input: "ΣΑΣ", want: "Σας"},
		{input: "ΑΣ", want: "Ας"},
		{input: "Xİ", want: "Xi\u0307"},
		{input: "ǆemal", want: "ǅemal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.input), "input %q", tt.input)
	}
}

func TestIsUpper(t *testing.T) {
	assert.True(t, IsUpper("IBM"))
	assert.True(t, IsUpper("3M"))
	assert.True(t, IsUpper("AT&T"))
	assert.False(t, IsUpper("123"))
	assert.False(t, IsUpper("Ibm"))
	assert.False(t, IsUpper(""))
	assert.True(t, IsUpper("ΣΑΣ"))
	assert.False(t, IsUpper("ß"))
	assert.False(t, IsUpper("Aª"), "ª counts as lower case")
	assert.False(t, IsUpper("ǅ"), "title case is not upper case")
	assert.True(t, IsUpper("Ⓐ"), "other uppercase counts as cased")
}

func TestFormatCompanyName_PassesThroughNonStrings(t *testing.T) {
	v := dataset.NewNumericValue(1999)
	assert.Equal(t, v, FormatCompanyName(v))
	assert.Equal(t, dataset.NewMissingValue(), FormatCompanyName(dataset.NewMissingValue()))

	got := FormatCompanyName(dataset.NewStringValue("IBM Corp"))
	assert.Equal(t, "IBM", got.Text())
}
