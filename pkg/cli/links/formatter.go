package links

// TruncateURL truncates a URL to the specified max length
func TruncateURL(url string, maxLen int) string {
	return TruncateText(url, maxLen)
}

// TruncateText shortens s to at most maxLen runes, ending in "..." when cut.
func TruncateText(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
