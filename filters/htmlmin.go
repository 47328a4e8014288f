// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filters

// `htmlmin` is a primitive not-so-correct HTML minimizer filter.
// `htmljsmin` additionally minifies inline scripts.

import (
	"github.com/dchest/htmlmin"
)

func init() {
	Register("htmlmin", func(args []string) Filter {
		return HTMLMin{}
	})
	Register("htmljsmin", func(args []string) Filter {
		return HTMLMin{MinifyScripts: true}
	})
}

type HTMLMin struct {
	MinifyScripts bool
}

func (f HTMLMin) Name() string {
	if f.MinifyScripts {
		return "htmljsmin"
	}
	return "htmlmin"
}

func (f HTMLMin) Apply(in []byte) (out []byte, err error) {
	return htmlmin.Minify(in, &htmlmin.Options{MinifyScripts: f.MinifyScripts})
}
