package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts the string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts the string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TrimToLower trims whitespace and lowercases in one step, the usual
// treatment for emails and usernames.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimToUpper trims whitespace and uppercases in one step.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// MaxLength caps the string at maxLen runes. Counting runes rather than
// bytes keeps multi-byte characters intact at the cut.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses runs of whitespace to single spaces and
// trims the ends.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters while keeping newlines,
// carriage returns, and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine flattens a multi-line string into one line with normalized
// spacing, for form fields and log messages.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return RemoveExtraWhitespace(s)
}
