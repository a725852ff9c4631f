package utils

import "unicode/utf8"

// Truncate cuts s to at most n runes. Cutting on a rune boundary keeps
// multi-byte text valid UTF-8; a byte slice could split a rune and leave
// a mangled character at the end.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
