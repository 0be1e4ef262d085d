// Package sanitizer provides string cleaning helpers for user-facing input:
// whitespace normalization, case folding, length capping, and HTML-safety
// transforms.
//
// # String Helpers
//
// Basic normalization for form fields and identifiers:
//
//	import "github.com/voilajsx/appkit/core/sanitizer"
//
//	name := sanitizer.RemoveExtraWhitespace("  John   Doe  ")
//	// "John Doe"
//
//	username := sanitizer.TrimToLower("  Admin ")
//	// "admin"
//
//	bio := sanitizer.MaxLength(userInput, 500)
//
// # HTML Safety
//
// EscapeHTML makes untrusted text safe to embed in markup; StripHTML
// extracts the readable text out of markup:
//
//	safe := sanitizer.EscapeHTML("<script>alert('x')</script>")
//	// "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"
//
//	text := sanitizer.StripHTML("<p>Hello <b>world</b></p>")
//	// "Hello world"
//
// # Struct Tags
//
// SanitizeStruct applies named sanitizers to struct fields via the
// `sanitize` tag, typically right before validation:
//
//	type SignupForm struct {
//		Email string `sanitize:"trim_lower"`
//		Name  string `sanitize:"trim,single_line,max:100"`
//		Bio   string `sanitize:"trim,escape_html"`
//	}
//
//	err := sanitizer.SanitizeStruct(&form)
//
// All helpers are pure functions on immutable string values and safe for
// concurrent use.
package sanitizer
