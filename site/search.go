// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"io"
	"log"
	"strings"

	"github.com/hesym/plume/search/indexer"
	"github.com/hesym/plume/utils"
)

// WriteSearchIndex renders every page and writes a JSON search index
// of them to w. Pages that fail to render are skipped with a log line.
func (s *Site) WriteSearchIndex(w io.Writer) error {
	pages, err := s.FindAll()
	if err != nil {
		return err
	}

	// Rendering dominates the cost, so do it on all CPUs;
	// the index itself is filled serially below.
	htmls := make([]string, len(pages))
	pool := utils.NewPool(func(job interface{}) error {
		i := job.(int)
		body, err := pages[i].Body()
		if err != nil {
			log.Printf("S %s: %s", pages[i].Path(), err)
			return nil
		}
		htmls[i] = body
		return nil
	})
	for i := range pages {
		pool.Add(i)
	}
	if err := pool.Err(); err != nil {
		return err
	}

	idx := indexer.New()
	for i, p := range pages {
		if htmls[i] == "" {
			continue
		}
		if err := idx.AddHTML(p.Abspath(), p.Heading(), strings.NewReader(htmls[i])); err != nil {
			return err
		}
	}
	return idx.WriteJSON(w)
}
