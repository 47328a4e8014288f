// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"regexp"
)

// Per-format patterns for the single top-level heading. Format-specific
// syntax knowledge stays in this table.
var headingRx = map[Format]*regexp.Regexp{
	Markdown: regexp.MustCompile(`(?m)^#[ \t]*([^#\s].*?)[ \t]*#*[ \t]*$`),
	Haml:     regexp.MustCompile(`(?m)^\s*%h1\s+(.*?)[ \t]*$`),
	Textile:  regexp.MustCompile(`(?m)^\s*h1\.\s+(.*?)[ \t]*$`),
}

// ExtractHeading returns the text of the first top-level heading in
// content, or "" if there is none.
func ExtractHeading(f Format, content string) string {
	rx := headingRx[f]
	if rx == nil {
		return ""
	}
	m := rx.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}

// StripHeading removes the first top-level heading line, and a blank
// line following it if present, from content.
func StripHeading(f Format, content string) string {
	rx := headingRx[f]
	if rx == nil {
		return content
	}
	loc := rx.FindStringIndex(content)
	if loc == nil {
		return content
	}
	end := loc[1]
	// Heading line's own newline.
	if end < len(content) && content[end] == '\n' {
		end++
	}
	// A following blank line.
	if end < len(content) && content[end] == '\n' {
		end++
	}
	return content[:loc[0]] + content[end:]
}
