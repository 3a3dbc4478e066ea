// Package currency converts between integer minor-unit amounts and
// locale-formatted display strings. Values are stored in the database as
// int64 minor units (e.g. cents); only the edges of the system deal in
// strings, and parsing is deliberately tolerant of user input.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Codec formats and parses currency amounts for a single locale.
type Codec struct {
	loc Locale
}

// New returns a codec for the given locale.
func New(loc Locale) Codec {
	return Codec{loc: loc}
}

// Locale returns the codec's locale.
func (c Codec) Locale() Locale {
	return c.loc
}

// scale returns 10^FractionDigits as a decimal.
func (c Codec) scale() decimal.Decimal {
	return decimal.New(1, int32(c.loc.FractionDigits))
}

// Format renders an integer minor-unit amount as a display string: the amount
// is divided by 10^fractionDigits rounding half away from zero, digits are
// grouped, and negatives always use a leading minus, never parentheses.
func (c Codec) Format(amount int64, includeSymbol bool) string {
	frac := int32(c.loc.FractionDigits)
	d := decimal.NewFromInt(amount)
	if frac > 0 {
		d = d.DivRound(c.scale(), frac)
	}
	s := d.StringFixed(frac)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if includeSymbol && !c.loc.SymbolAfter {
		b.WriteString(c.loc.Symbol)
	}
	b.WriteString(c.group(intPart))
	if frac > 0 {
		b.WriteRune(c.loc.DecimalSep)
		b.WriteString(fracPart)
	}
	if includeSymbol && c.loc.SymbolAfter {
		b.WriteByte(' ')
		b.WriteString(c.loc.Symbol)
	}
	return b.String()
}

// group inserts the locale's grouping separator into a run of digits.
func (c Codec) group(digits string) string {
	size := c.loc.GroupSize
	if size <= 0 || len(digits) <= size {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % size
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteRune(c.loc.GroupSep)
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

// Parse converts a user-entered currency string to integer minor units,
// multiplying by 10^fractionDigits and truncating toward zero. It tolerates
// an optional currency symbol, grouping separators, and surrounding space.
// Any failure returns def: the codec runs on every keystroke and focus
// change, so it recovers locally instead of propagating errors.
func (c Codec) Parse(text string, def int64) int64 {
	d, ok := c.parseDecimal(text)
	if !ok {
		return def
	}
	return d.Mul(c.scale()).IntPart()
}

// parseDecimal strips locale decorations from text and parses what remains.
func (c Codec) parseDecimal(text string) (decimal.Decimal, bool) {
	t := c.clean(text)
	// Accounting-style negatives.
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		t = "-" + strings.Trim(t, "()")
	}
	return parseLenient(strings.Replace(t, string(c.loc.DecimalSep), ".", 1))
}

// parseLenient parses a cleaned, '.'-separated number, tolerating in-progress
// shapes like "1." and ".5". Anything without a digit fails.
func parseLenient(t string) (decimal.Decimal, bool) {
	if !strings.ContainsAny(t, "0123456789") {
		return decimal.Zero, false
	}
	t = strings.TrimSuffix(t, ".")
	if strings.HasPrefix(t, ".") {
		t = "0" + t
	}
	t = strings.Replace(t, "-.", "-0.", 1)
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// clean removes the currency symbol, grouping separators and space variants
// (ASCII, no-break and narrow no-break) from a display string.
func (c Codec) clean(s string) string {
	s = strings.ReplaceAll(s, c.loc.Symbol, "")
	s = strings.ReplaceAll(s, string(c.loc.GroupSep), "")
	for _, sp := range []string{"\u00a0", "\u202f", " "} {
		s = strings.ReplaceAll(s, sp, "")
	}
	return s
}

// Normalize re-rounds an in-progress input field when it loses focus. The
// result carries no symbol and no grouping, just digits, sign and a single
// decimal separator at the locale's fraction-digit scale. A lone "-" is kept
// as-is so the user can keep typing; a lone separator or an empty remainder
// collapses to the empty string. Text that still fails to parse after
// cleanup is returned unchanged.
func (c Codec) Normalize(text string) string {
	t := c.clean(text)
	if t == "-" {
		return t
	}
	sep := string(c.loc.DecimalSep)
	// Keep only the first decimal separator.
	if i := strings.Index(t, sep); i >= 0 {
		t = t[:i+len(sep)] + strings.ReplaceAll(t[i+len(sep):], sep, "")
	}
	if t == "" || t == sep {
		return ""
	}
	d, ok := parseLenient(strings.Replace(t, sep, ".", 1))
	if !ok {
		return t
	}
	frac := int32(c.loc.FractionDigits)
	s := d.Round(frac).StringFixed(frac)
	return strings.Replace(s, ".", sep, 1)
}

// IsZero reports whether a currency string parses to a zero amount. Empty or
// unparsable input counts as zero, which is what input validation wants.
func (c Codec) IsZero(text string) bool {
	return c.Parse(text, 0) == 0
}
