package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func codecFor(t *testing.T, name string) Codec {
	t.Helper()
	tag, err := language.Parse(name)
	require.NoError(t, err)
	return New(LocaleFor(tag))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		locale string
		amount int64
		symbol bool
		want   string
	}{
		{"en-US", 134566, true, "$1,345.66"},
		{"en-US", 134566, false, "1,345.66"},
		{"en-US", 97000, true, "$970.00"},
		{"en-US", -3000, true, "-$30.00"},
		{"en-US", -3000, false, "-30.00"},
		{"en-US", 0, true, "$0.00"},
		{"en-US", 5, true, "$0.05"},
		{"en-GB", 123456789, true, "£1,234,567.89"},
		{"de-DE", 134566, true, "1.345,66 €"},
		{"fr-FR", 134566, true, "1\u00a0345,66 €"},
		{"fr-FR", -134566, false, "-1\u00a0345,66"},
		{"ja-JP", 1234, true, "¥1,234"},
		{"ja-JP", -1234567, true, "-¥1,234,567"},
	}
	for _, tt := range tests {
		c := codecFor(t, tt.locale)
		got := c.Format(tt.amount, tt.symbol)
		assert.Equal(t, tt.want, got, "Format(%d) in %s", tt.amount, tt.locale)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		locale string
		text   string
		def    int64
		want   int64
	}{
		{"en-US", "$1,345.66", 0, 134566},
		{"en-US", "1345.66", 0, 134566},
		{"en-US", "1345", 0, 134500},
		{"en-US", "-30.00", 0, -3000},
		{"en-US", "-$30.00", 0, -3000},
		{"en-US", "($30.00)", 0, -3000},
		{"en-US", "  970.00  ", 0, 97000},
		{"en-US", "1.", 0, 100},
		{"en-US", ".5", 0, 50},
		{"en-US", "12.345", 0, 1234},
		{"en-US", "-12.345", 0, -1234},
		{"en-US", "", 42, 42},
		{"en-US", "-", 42, 42},
		{"en-US", "abc", 42, 42},
		{"en-US", "1.2.3", 42, 42},
		{"fr-FR", "1 345,66", 0, 134566},
		{"fr-FR", "1\u00a0345,66 €", 0, 134566},
		{"de-DE", "1.345,66 €", 0, 134566},
		{"ja-JP", "¥1,234", 0, 1234},
	}
	for _, tt := range tests {
		c := codecFor(t, tt.locale)
		got := c.Parse(tt.text, tt.def)
		assert.Equal(t, tt.want, got, "Parse(%q) in %s", tt.text, tt.locale)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	amounts := []int64{0, 1, -1, 99, 100, -2500, 97000, 134566, -134566, 999999999, -999999999}
	for _, name := range []string{"en-US", "en-GB", "de-DE", "fr-FR", "ja-JP"} {
		c := codecFor(t, name)
		for _, x := range amounts {
			got := c.Parse(c.Format(x, true), 0)
			assert.Equal(t, x, got, "round-trip %d in %s", x, name)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		locale string
		text   string
		want   string
	}{
		{"en-US", "1.2.3", "1.23"},
		{"en-US", "-", "-"},
		{"en-US", "", ""},
		{"en-US", ".", ""},
		{"en-US", "$", ""},
		{"en-US", "1.2", "1.20"},
		{"en-US", "1.", "1.00"},
		{"en-US", ".5", "0.50"},
		{"en-US", "$1,234.5", "1234.50"},
		{"en-US", "1.005", "1.01"},
		{"en-US", "-30", "-30.00"},
		{"fr-FR", "1,2,3", "1,23"},
		{"fr-FR", ",", ""},
		{"de-DE", "1.345,667", "1345,67"},
		{"ja-JP", "1,234", "1234"},
	}
	for _, tt := range tests {
		c := codecFor(t, tt.locale)
		got := c.Normalize(tt.text)
		assert.Equal(t, tt.want, got, "Normalize(%q) in %s", tt.text, tt.locale)
	}
}

func TestIsZero(t *testing.T) {
	c := codecFor(t, "en-US")
	assert.True(t, c.IsZero("0"))
	assert.True(t, c.IsZero("0.00"))
	assert.True(t, c.IsZero(""))
	assert.False(t, c.IsZero("0.01"))
	assert.False(t, c.IsZero("-5"))
}

func TestLocaleForName(t *testing.T) {
	assert.Equal(t, language.French, LocaleForName("fr-FR").Tag)
	assert.Equal(t, language.German, LocaleForName("de").Tag)
	// Unknown names fall back to en-US.
	assert.Equal(t, language.AmericanEnglish, LocaleForName("no-such-locale").Tag)
	assert.Equal(t, language.AmericanEnglish, LocaleForName("").Tag)
}
