// Package sanitize strips dangerous markup from user-supplied text before
// it is stored. Comments and ticket messages are rendered back to other
// users, so everything passes through here at the HTTP boundary.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var (
	// ugcPolicy keeps the formatting tags a trusted editor may use in
	// placed content (links, headings, lists).
	ugcPolicy = bluemonday.UGCPolicy()

	// strictPolicy strips all markup. Used for plain-text fields such as
	// comments and ticket messages.
	strictPolicy = bluemonday.StrictPolicy()
)

// HTML sanitizes rich text, keeping safe user-generated-content markup.
func HTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// Text strips all markup from a plain-text field.
func Text(s string) string {
	return strictPolicy.Sanitize(s)
}
