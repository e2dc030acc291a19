package dispatch

import "strings"

// SanitizeLabel restricts s to [A-Za-z0-9:_.-]. Spaces become underscores,
// anything else (including non-ASCII) is dropped.
func SanitizeLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ':' || r == '_' || r == '.' || r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return b.String()
}
