package report

import "strings"

// slugFallback is used when a name reduces to nothing filesystem-safe.
const slugFallback = "report"

// Slugify derives a filesystem-safe name from free text: surrounding
// whitespace is trimmed, spaces become underscores, and every character
// outside [A-Za-z0-9_-] is removed. Empty input, or input that strips to
// nothing, yields "report".
func Slugify(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return slugFallback
	}
	s = strings.ReplaceAll(s, " ", "_")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z',
			r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return slugFallback
	}
	return b.String()
}
