// Package textutil holds the small text helpers shared by templates,
// services and the JSON API.
package textutil

import "strings"

// SplitList splits a comma separated field (technologies, tags, skills)
// into trimmed, non-empty items.
func SplitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// FirstTag returns the first item of a comma separated tag field, or
// "General" when the field is empty.
func FirstTag(tags string) string {
	items := SplitList(tags)
	if len(items) == 0 {
		return "General"
	}
	return items[0]
}

// StripHTML flattens rich-text HTML into plain text: tags are removed
// and runs of whitespace collapse to single spaces.
func StripHTML(html string) string {
	var b strings.Builder
	b.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
