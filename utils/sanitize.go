package utils

import "strings"

// Length caps applied after escaping and trimming.
const (
	MaxFieldLen     = 1000 // general quote fields
	MaxLongFieldLen = 2000 // job-application free text
	MaxPhoneLen     = 20
)

// htmlEscaper neutralizes the five characters that can carry markup once a
// value is embedded in the generated emails. Replacements happen in a single
// pass, so already-escaped output is never double-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// SanitizeInput returns a string safe for embedding in HTML: entity-escaped,
// trimmed, and capped at max runes. Non-string input yields "".
func SanitizeInput(v any, max int) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = htmlEscaper.Replace(s)
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > max {
		s = string(r[:max])
	}
	return s
}

// SanitizePhone keeps only digits, spaces, hyphens, plus, and parentheses,
// capped at MaxPhoneLen. No HTML escaping: the permitted character set
// cannot carry markup. Non-string input yields "".
func SanitizePhone(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ' ', r == '-', r == '+', r == '(', r == ')':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > MaxPhoneLen {
		out = out[:MaxPhoneLen]
	}
	return out
}
