// Package htmlsanitize cleans user-supplied text before it is stored.
//
// Two levels:
//   - Sanitize keeps a safe rich-text subset (formatting, lists,
//     tables, links, images) and strips everything executable. Use it
//     for descriptions, notes, and note content.
//   - StripTags reduces input to plain text. Use it for single-line
//     fields like names, labels, and captions.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// richText allows the rich-text subset. Built once; bluemonday policies
// are safe for concurrent use.
var richText = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowElements("u", "s", "sub", "sup", "mark", "hr")
	p.AllowAttrs("class", "style").OnElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
	return p
}()

var plainText = bluemonday.StrictPolicy()

// Sanitize returns the input with only the allowed rich-text subset
// remaining. Script, style, iframes, forms, event handlers, and
// javascript: or data: URLs are removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return richText.Sanitize(s)
}

// StripTags removes all markup and returns the remaining text with
// HTML entities decoded, so ordinary punctuation survives round-trips.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}
