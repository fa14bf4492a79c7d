package quoter

import (
	"strings"
	"unicode/utf8"
)

// DefaultEscape is the escape marker a new [Quoter] starts with.
const DefaultEscape = `\`

// IsEscaped reports whether the byte at offset in haystack is escaped by
// marker. Runs of markers directly before offset are consumed right to left;
// each marker flips the answer, so a marker escaping another marker cancels
// out. The marker is compared case-insensitively. An empty marker disables
// escaping.
func IsEscaped(haystack string, offset int, marker string) bool {
	if marker == "" || offset < 0 || offset > len(haystack) {
		return false
	}
	escaped := false
	for offset-len(marker) >= 0 && foldEqual(haystack[offset-len(marker):offset], marker) {
		escaped = !escaped
		offset -= len(marker)
	}
	return escaped
}

// foldEqual compares two strings of equal byte length under Unicode case
// folding. Invalid UTF-8 only matches byte for byte.
func foldEqual(s, t string) bool {
	if s == t {
		return true
	}
	if len(s) != len(t) || !utf8.ValidString(s) {
		return false
	}
	return strings.EqualFold(s, t)
}

// indexFold returns the index of the first case-insensitive occurrence of
// needle in s at or after from, or -1.
func indexFold(s, needle string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(s); i++ {
		if foldEqual(s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
