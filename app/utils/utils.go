package utils

// TruncateRunes caps s at max runes. Rune-based because downstream display
// limits count characters, not bytes.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// EllipsizeRunes truncates like TruncateRunes but marks cut-off content.
func EllipsizeRunes(s string, max int) string {
	truncated := TruncateRunes(s, max)
	if truncated == s {
		return s
	}
	return truncated + "..."
}
