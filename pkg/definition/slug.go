package definition

import (
	"strings"
	"unicode"
)

const maxMachineName = 120

// machineName derives a storage key from an admin-entered label: lowercase,
// word separators become underscores, everything else is dropped, truncated
// to the column width.
func machineName(label string) string {
	var out strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && out.Len() > 0 {
				out.WriteByte('_')
			}
			pendingSep = false
			out.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}
	name := []rune(out.String())
	if len(name) > maxMachineName {
		name = name[:maxMachineName]
	}
	return string(name)
}
