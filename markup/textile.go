// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// A small textile renderer covering the subset used in page files:
// hN. headings, bq. blockquotes, paragraphs, *strong* and _emphasis_.

func init() {
	Register(Textile, textileConverter{})
}

type textileConverter struct{}

func (textileConverter) Name() string { return "textile" }

var (
	textileHeadingRx = regexp.MustCompile(`^h([1-6])\.\s+(.*)$`)
	textileStrongRx  = regexp.MustCompile(`\*([^*\n]+)\*`)
	textileEmRx      = regexp.MustCompile(`\b_([^_\n]+)_\b`)
)

func (textileConverter) Render(content []byte) ([]byte, error) {
	var out strings.Builder
	for _, block := range splitBlocks(string(content)) {
		if m := textileHeadingRx.FindStringSubmatch(block); m != nil {
			fmt.Fprintf(&out, "<h%s>%s</h%s>\n", m[1], textileInline(m[2]), m[1])
			continue
		}
		if strings.HasPrefix(block, "bq. ") {
			fmt.Fprintf(&out, "<blockquote><p>%s</p></blockquote>\n", textileInline(block[len("bq. "):]))
			continue
		}
		fmt.Fprintf(&out, "<p>%s</p>\n", textileInline(block))
	}
	return []byte(out.String()), nil
}

func textileInline(s string) string {
	s = textileStrongRx.ReplaceAllString(s, "<strong>$1</strong>")
	s = textileEmRx.ReplaceAllString(s, "<em>$1</em>")
	return s
}

// splitBlocks splits content into blank-line separated blocks with
// surrounding whitespace trimmed.
func splitBlocks(s string) []string {
	var blocks []string
	for _, b := range strings.Split(s, "\n\n") {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
