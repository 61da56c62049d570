package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	if maxWidth <= ellipsisLen {
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	return string(runes[:maxWidth-ellipsisLen]) + cfg.Ellipsis, true
}

// TruncateWithPrefix truncates text while keeping prefix intact.
// Example: TruncateWithPrefix("www.example.com", 10, "▾ ", cfg) -> "▾ www.e..."
func TruncateWithPrefix(text string, maxWidth int, prefix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	prefixLen := utf8.RuneCountInString(prefix)
	if prefixLen+utf8.RuneCountInString(text) <= maxWidth {
		return prefix + text, false
	}

	if prefixLen+utf8.RuneCountInString(cfg.Ellipsis) >= maxWidth {
		return TruncateText(prefix+text, maxWidth, cfg)
	}

	truncated, _ := TruncateText(text, maxWidth-prefixLen, cfg)
	return prefix + truncated, true
}

// PadRight pads s with spaces up to width visible characters.
// Strings already at or past width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - VisibleLength(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
