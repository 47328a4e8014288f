// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// A minimal haml-like renderer: "%tag content" lines become elements,
// anything else becomes a paragraph.

func init() {
	Register(Haml, hamlConverter{})
}

type hamlConverter struct{}

func (hamlConverter) Name() string { return "haml" }

var hamlTagRx = regexp.MustCompile(`^\s*%([a-z][a-z0-9]*)(?:\s+(.*))?$`)

func (hamlConverter) Render(content []byte) ([]byte, error) {
	var out strings.Builder
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := hamlTagRx.FindStringSubmatch(line); m != nil {
			fmt.Fprintf(&out, "<%s>%s</%s>\n", m[1], strings.TrimSpace(m[2]), m[1])
			continue
		}
		fmt.Fprintf(&out, "<p>%s</p>\n", strings.TrimSpace(line))
	}
	return []byte(out.String()), nil
}
