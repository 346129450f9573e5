package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
		max   int
		want  string
	}{
		{"plain text", "Acme Ltda", MaxFieldLen, "Acme Ltda"},
		{"trims whitespace", "  hola  ", MaxFieldLen, "hola"},
		{"escapes angle brackets", "<script>alert(1)</script>", MaxFieldLen, "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"escapes ampersand", "a & b", MaxFieldLen, "a &amp; b"},
		{"escapes quotes", `"x" y 'z'`, MaxFieldLen, "&quot;x&quot; y &#x27;z&#x27;"},
		{"no double escaping", "&amp;", MaxFieldLen, "&amp;amp;"},
		{"non-string yields empty", 42, MaxFieldLen, ""},
		{"nil yields empty", nil, MaxFieldLen, ""},
		{"keeps accents", "Cartón corrugado", MaxFieldLen, "Cartón corrugado"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.input, tt.max))
		})
	}
}

func TestSanitizeInputTruncates(t *testing.T) {
	long := strings.Repeat("x", MaxFieldLen+500)
	got := SanitizeInput(long, MaxFieldLen)
	assert.Len(t, got, MaxFieldLen)

	accented := strings.Repeat("é", MaxFieldLen+1)
	got = SanitizeInput(accented, MaxFieldLen)
	assert.Equal(t, MaxFieldLen, len([]rune(got)))
}

func TestSanitizeInputNeverLeavesMarkup(t *testing.T) {
	inputs := []string{
		`<img src=x onerror="alert(1)">`,
		`'"<>&`,
		"a<b>c&d\"e'f",
	}
	for _, in := range inputs {
		got := SanitizeInput(in, MaxFieldLen)
		assert.NotContains(t, got, "<")
		assert.NotContains(t, got, ">")
		assert.NotContains(t, got, `"`)
		assert.NotContains(t, got, "'")
		// every remaining & must open an entity we produced
		for i := 0; i < len(got); i++ {
			if got[i] == '&' {
				rest := got[i:]
				ok := strings.HasPrefix(rest, "&amp;") ||
					strings.HasPrefix(rest, "&lt;") ||
					strings.HasPrefix(rest, "&gt;") ||
					strings.HasPrefix(rest, "&quot;") ||
					strings.HasPrefix(rest, "&#x27;")
				assert.True(t, ok, "unescaped & in %q", got)
			}
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"chilean mobile", "+56 9 1111 2222", "+56 9 1111 2222"},
		{"keeps allowed punctuation", "(2) 234-5678", "(2) 234-5678"},
		{"strips letters", "llamar al 9 8765 4321", "  9 8765 4321"},
		{"strips markup", "<b>123456789</b>", "123456789"},
		{"non-string yields empty", 123, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizePhone(tt.input))
		})
	}
}

func TestSanitizePhoneLengthCap(t *testing.T) {
	got := SanitizePhone(strings.Repeat("1", 50))
	assert.Len(t, got, MaxPhoneLen)
}

func TestSanitizePhoneCharacterSet(t *testing.T) {
	got := SanitizePhone("+56 (9) 1234-5678 ext. 99 <x>")
	for _, r := range got {
		valid := (r >= '0' && r <= '9') || r == ' ' || r == '-' || r == '+' || r == '(' || r == ')'
		assert.True(t, valid, "unexpected rune %q in %q", r, got)
	}
	assert.LessOrEqual(t, len(got), MaxPhoneLen)
}
