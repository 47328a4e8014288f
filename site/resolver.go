// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/hesym/plume/markup"
	"github.com/hesym/plume/metafile"
	"github.com/hesym/plume/utils"
)

// Resolve maps a logical path to its backing file. For each format in
// priority order it tries the flat form {root}/{path}.{ext}, then the
// directory form {root}/{path}/page.{ext}; the first existing file
// wins. ok is false when no format matches.
func (s *Site) Resolve(logical string) (filename string, ok bool) {
	logical = cleanPath(logical)
	if logical == "" {
		return "", false
	}
	rel := filepath.FromSlash(logical)
	for _, f := range markup.Formats {
		flat := filepath.Join(s.PageDir(), rel+f.Ext())
		if utils.FileExist(flat) {
			return flat, true
		}
		dir := filepath.Join(s.PageDir(), rel, PageFileBase+f.Ext())
		if utils.FileExist(dir) {
			return dir, true
		}
	}
	return "", false
}

// Attachment validates a request for a static file inside a page
// directory under the content root. The file must exist, must not
// itself be a page source, and must sit next to one. It returns the
// resolved filename, or ok == false.
func (s *Site) Attachment(reqpath string) (filename string, ok bool) {
	reqpath = cleanPath(reqpath)
	if reqpath == "" {
		return "", false
	}
	filename = filepath.Join(s.ContentDir(), filepath.FromSlash(reqpath))
	if !utils.FileExist(filename) {
		return "", false
	}
	base := filepath.Base(filename)
	for _, f := range markup.Formats {
		// Page sources are never served as attachments.
		if base == PageFileBase+f.Ext() {
			return "", false
		}
	}
	dir := filepath.Dir(filename)
	for _, f := range markup.Formats {
		if utils.FileExist(filepath.Join(dir, PageFileBase+f.Ext())) {
			return filename, true
		}
	}
	return "", false
}

// ReadAttachment returns a valid attachment's contents with any filter
// configured for its extension (such as cssmin or jsmin) applied.
func (s *Site) ReadAttachment(reqpath string) ([]byte, error) {
	filename, ok := s.Attachment(reqpath)
	if !ok {
		return nil, fmt.Errorf("%q: %w", reqpath, metafile.ErrNotFound)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return s.PageFilters.ApplyFilter(filepath.Ext(filename), b)
}

// cleanPath normalizes a slash-separated request path, resolving any
// ".." segments against a virtual root so requests cannot escape it.
func cleanPath(p string) string {
	p = path.Clean("/" + p)
	return p[1:]
}
