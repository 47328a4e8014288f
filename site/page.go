// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"fmt"
	"log"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hesym/plume/markup"
	"github.com/hesym/plume/metafile"
	"github.com/hesym/plume/utils"
)

// Page is one logical content page. It is immutable once loaded:
// a change to the backing file produces a new Page through the cache,
// derived views are computed on demand from parsed state.
type Page struct {
	site     *Site
	path     string
	filename string
	format   markup.Format
	meta     map[string]string
	source   string
	mtime    time.Time
}

func loadPage(s *Site, path, filename string) (*Page, error) {
	f, err := metafile.Open(filename)
	if err != nil {
		return nil, err
	}
	format, ok := markup.FormatForFile(filename)
	if !ok {
		return nil, fmt.Errorf("%s: not a page file", filename)
	}
	return &Page{
		site:     s,
		path:     path,
		filename: filename,
		format:   format,
		meta:     f.Meta(),
		source:   f.Content(),
		mtime:    f.ModTime(),
	}, nil
}

// Path returns the page's logical path: slash-separated, no leading slash.
func (p *Page) Path() string { return p.path }

// Abspath returns the logical path with a leading slash.
func (p *Page) Abspath() string { return "/" + p.path }

// Filename returns the absolute path of the backing file.
func (p *Page) Filename() string { return p.filename }

// Format returns the page's markup format.
func (p *Page) Format() markup.Format { return p.format }

// ModTime returns the backing file's modification time at load.
func (p *Page) ModTime() time.Time { return p.mtime }

// Markup returns the raw markup body, metadata header stripped.
func (p *Page) Markup() string { return p.source }

// Meta returns the metadata value for a key (keys are lowercase),
// or "" if absent.
func (p *Page) Meta(key string) string { return p.meta[key] }

func (p *Page) Description() string { return p.Meta("description") }
func (p *Page) Keywords() string    { return p.Meta("keywords") }
func (p *Page) AtomID() string      { return p.Meta("atom id") }

// ReadMore returns the link text for cut-off article summaries.
func (p *Page) ReadMore() string {
	if v := p.Meta("read more"); v != "" {
		return v
	}
	return "Continue reading"
}

// Heading returns the text of the page's top-level heading, or "" if
// the markup has none.
func (p *Page) Heading() string {
	return markup.ExtractHeading(p.format, p.source)
}

// Date returns the page's date metadata. Pages without a date are not
// articles; a date that fails to parse counts as absent and is logged.
func (p *Page) Date() (time.Time, bool) {
	v := p.Meta("date")
	if v == "" {
		return time.Time{}, false
	}
	d, err := utils.ParseAnyDate(v)
	if err != nil {
		log.Printf("! %s: %s", p.filename, err)
		return time.Time{}, false
	}
	return d, true
}

// DateString returns the date formatted as RFC 3339, or "" for pages
// without one.
func (p *Page) DateString() string {
	d, ok := p.Date()
	if !ok {
		return ""
	}
	return d.Format(time.RFC3339)
}

// Summary renders the summary metadata to HTML; "" means the page has
// no summary. Literal \n sequences in the value become real newlines.
// Textile pages use the textile converter, every other format uses the
// default converter.
func (p *Page) Summary() (string, error) {
	v := p.Meta("summary")
	if v == "" {
		return "", nil
	}
	v = strings.ReplaceAll(v, `\n`, "\n")
	var (
		b   []byte
		err error
	)
	if p.format == markup.Textile {
		b, err = markup.Convert(markup.Textile, []byte(v))
	} else {
		b, err = markup.ConvertDefault([]byte(v))
	}
	if err != nil {
		return "", fmt.Errorf("%s: render summary: %w", p.filename, err)
	}
	return string(b), nil
}

// Body renders the page markup to HTML with the heading line removed.
// A filter configured for the ".html" key applies to the result.
func (p *Page) Body() (string, error) {
	src := markup.StripHeading(p.format, p.source)
	b, err := markup.Convert(p.format, []byte(src))
	if err != nil {
		return "", fmt.Errorf("%s: render: %w", p.filename, err)
	}
	b, err = p.site.PageFilters.ApplyFilter(".html", b)
	if err != nil {
		return "", fmt.Errorf("%s: filter: %w", p.filename, err)
	}
	return string(b), nil
}

// categoryPaths parses the comma-separated categories metadata into
// trimmed logical paths.
func (p *Page) categoryPaths() []string {
	v := p.Meta("categories")
	if v == "" {
		return nil
	}
	var paths []string
	for _, ref := range strings.Split(v, ",") {
		ref = strings.TrimSpace(ref)
		if ref != "" {
			paths = append(paths, ref)
		}
	}
	return paths
}

// inCategory reports whether the page lists the given logical path in
// its categories metadata.
func (p *Page) inCategory(path string) bool {
	for _, ref := range p.categoryPaths() {
		if ref == path {
			return true
		}
	}
	return false
}

// Categories loads the pages referenced by the categories metadata,
// sorted by heading. References with no backing page file are dropped.
func (p *Page) Categories() ([]*Page, error) {
	var cats []*Page
	for _, ref := range p.categoryPaths() {
		if _, ok := p.site.Resolve(ref); !ok {
			continue
		}
		cp, err := p.site.Load(ref)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cp)
	}
	sortByHeading(cats)
	return cats, nil
}

// Parent returns the page one directory level up, or nil for top-level
// pages and when no page backs the parent path.
func (p *Page) Parent() (*Page, error) {
	dir := path.Dir(p.path)
	if dir == "." || dir == "/" {
		return nil, nil
	}
	parent, err := p.site.Load(dir)
	if err != nil {
		if metafile.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return parent, nil
}

// Pages returns undated pages that list this page as a category,
// sorted by heading.
func (p *Page) Pages() ([]*Page, error) {
	all, err := p.site.FindAll()
	if err != nil {
		return nil, err
	}
	var out []*Page
	for _, q := range all {
		if _, dated := q.Date(); dated {
			continue
		}
		if q.inCategory(p.path) {
			out = append(out, q)
		}
	}
	sortByHeading(out)
	return out, nil
}

// Articles returns dated pages that list this page as a category,
// newest first.
func (p *Page) Articles() ([]*Page, error) {
	articles, err := p.site.FindArticles()
	if err != nil {
		return nil, err
	}
	var out []*Page
	for _, q := range articles {
		if q.inCategory(p.path) {
			out = append(out, q)
		}
	}
	return out, nil
}

// Standalone reports whether the page is stored in directory form:
// a directory holding page.{ext} plus optional sibling assets.
func (p *Page) Standalone() bool {
	return filepath.Base(p.filename) == PageFileBase+p.format.Ext()
}

// Permalink returns the page's final path component: the directory
// name for standalone pages, the filename stem otherwise.
func (p *Page) Permalink() string {
	if p.Standalone() {
		return filepath.Base(filepath.Dir(p.filename))
	}
	return strings.TrimSuffix(filepath.Base(p.filename), p.format.Ext())
}

// Stylesheet returns the URL path of the page's stylesheet. Only
// standalone pages with a page.sass source next to the page file
// have one.
func (p *Page) Stylesheet() (string, bool) {
	if !p.Standalone() {
		return "", false
	}
	if !utils.FileExist(filepath.Join(filepath.Dir(p.filename), PageFileBase+".sass")) {
		return "", false
	}
	return p.Abspath() + "/" + PageFileBase + ".css", true
}

// Javascript returns the URL path of the page's script. Only
// standalone pages with a page.js next to the page file have one.
func (p *Page) Javascript() (string, bool) {
	if !p.Standalone() {
		return "", false
	}
	if !utils.FileExist(filepath.Join(filepath.Dir(p.filename), PageFileBase+".js")) {
		return "", false
	}
	return p.Abspath() + "/" + PageFileBase + ".js", true
}

// sortByHeading orders pages case-insensitively by heading, keeping
// the incoming order for equal headings.
func sortByHeading(pages []*Page) {
	sort.SliceStable(pages, func(i, j int) bool {
		return strings.ToLower(pages[i].Heading()) < strings.ToLower(pages[j].Heading())
	})
}
