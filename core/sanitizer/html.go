package sanitizer

import (
	"html"
	"regexp"
	"strings"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// EscapeHTML encodes markup metacharacters so untrusted text renders as
// text. No literal '<' or '>' survives the transform.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML decodes HTML entities back to their characters. It inverts
// EscapeHTML for any input EscapeHTML produced.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripHTML removes tags and decodes entities, leaving the readable text.
// Tag contents between angle brackets are discarded entirely, so script
// and style bodies remain in the output as text only if they appeared
// outside a tag.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRe.ReplaceAllString(s, ""))
}

// RemoveNullBytes strips NUL characters, which C-backed storage layers
// and some databases reject.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
