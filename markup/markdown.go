// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"github.com/russross/blackfriday"
)

func init() {
	Register(Markdown, markdownConverter{})
}

type markdownConverter struct{}

func (markdownConverter) Name() string { return "markdown" }

func (markdownConverter) Render(content []byte) ([]byte, error) {
	return blackfriday.MarkdownCommon(content), nil
}
