package currency

import "golang.org/x/text/language"

// Locale carries the formatting conventions the codec needs: separators,
// currency symbol and placement, and the number of fraction digits used for
// minor-unit storage (e.g. 2 for cents, 0 for yen).
type Locale struct {
	Tag            language.Tag
	DecimalSep     rune
	GroupSep       rune
	GroupSize      int
	Symbol         string
	SymbolAfter    bool // symbol trails the amount, e.g. "12,34 €"
	FractionDigits int
}

var locales = []Locale{
	{Tag: language.AmericanEnglish, DecimalSep: '.', GroupSep: ',', GroupSize: 3, Symbol: "$", FractionDigits: 2},
	{Tag: language.BritishEnglish, DecimalSep: '.', GroupSep: ',', GroupSize: 3, Symbol: "£", FractionDigits: 2},
	{Tag: language.German, DecimalSep: ',', GroupSep: '.', GroupSize: 3, Symbol: "€", SymbolAfter: true, FractionDigits: 2},
	{Tag: language.French, DecimalSep: ',', GroupSep: '\u00a0', GroupSize: 3, Symbol: "€", SymbolAfter: true, FractionDigits: 2},
	{Tag: language.Japanese, DecimalSep: '.', GroupSep: ',', GroupSize: 3, Symbol: "¥", FractionDigits: 0},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	ts := make([]language.Tag, len(locales))
	for i, l := range locales {
		ts[i] = l.Tag
	}
	return ts
}

// LocaleFor returns the closest supported locale for tag,
// falling back to en-US.
func LocaleFor(tag language.Tag) Locale {
	_, i, _ := matcher.Match(tag)
	return locales[i]
}

// LocaleForName parses a BCP 47 name like "fr-FR" and returns the matching
// locale. Unknown names fall back to en-US.
func LocaleForName(name string) Locale {
	tag, err := language.Parse(name)
	if err != nil {
		return DefaultLocale()
	}
	return LocaleFor(tag)
}

// DefaultLocale returns the en-US locale.
func DefaultLocale() Locale {
	return locales[0]
}
