// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package site implements a file-backed content repository: pages are
// text files with an optional metadata header, located by logical path,
// parsed on demand and cached with modification-time invalidation.
package site

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hesym/plume/filters"
	"github.com/hesym/plume/fspoll"
	"github.com/hesym/plume/markup"
	"github.com/hesym/plume/metafile"
	"github.com/hesym/plume/utils"
)

type Site struct {
	BaseDir     string
	Config      *Config
	PageFilters *filters.Collection

	cache   *Cache
	watcher *fspoll.Watcher
}

// Open opens a site rooted at dir, reading its configuration from
// site.yml inside it.
func Open(dir string) (*Site, error) {
	conf, err := ReadConfig(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	return New(dir, conf)
}

// New returns a site rooted at dir with the given configuration, for
// callers that resolve configuration themselves.
func New(dir string, conf *Config) (*Site, error) {
	if conf == nil {
		conf = &Config{}
	}
	conf.setDefaults()
	s := &Site{
		BaseDir: dir,
		Config:  conf,
		cache:   NewCache(),
	}
	if err := s.loadPageFilters(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Site) loadPageFilters() error {
	pageFilters := filters.NewCollection()
	for key, line := range s.Config.Filters {
		if err := pageFilters.AddFromYAML(key, line); err != nil {
			return err
		}
	}
	s.PageFilters = pageFilters
	return nil
}

// ContentDir returns the directory holding attachments and the menu file.
func (s *Site) ContentDir() string {
	return filepath.Join(s.BaseDir, s.Config.ContentRoot)
}

// PageDir returns the directory holding page sources.
func (s *Site) PageDir() string {
	return filepath.Join(s.BaseDir, s.Config.PageRoot)
}

// Load returns the page at the given logical path, reusing the cached
// copy when the backing file is unchanged. It returns an error for
// which metafile.IsNotFound is true when no file backs the path.
func (s *Site) Load(path string) (*Page, error) {
	filename, ok := s.Resolve(path)
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, metafile.ErrNotFound)
	}
	return s.cache.load(s, path, filename)
}

// Purge drops every cached page. The next Load of each path re-reads
// its backing file.
func (s *Site) Purge() {
	s.cache.Purge()
}

// isIgnoredFile returns true if filename should be ignored
// when scanning for pages.
func (s *Site) isIgnoredFile(filename string) bool {
	// Files ending with ~ are considered temporary.
	if filename[len(filename)-1] == '~' {
		return true
	}
	// Crap from OS X Finder.
	if filename == ".DS_Store" {
		return true
	}
	return false
}

// FindAll loads every page under the page root. Each file goes through
// Load, so the scan shares the cache's staleness logic with single
// lookups. A page that fails to parse or render is skipped with a log
// line; the scan continues.
func (s *Site) FindAll() ([]*Page, error) {
	root := s.PageDir()
	var pages []*Page
	err := filepath.Walk(root, func(fpath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		name := fi.Name()
		if s.isIgnoredFile(name) {
			return nil
		}
		if !utils.HasFileExt(name, markup.Extensions()) {
			return nil
		}
		rel, err := filepath.Rel(root, fpath)
		if err != nil {
			return err
		}
		p, err := s.Load(logicalPath(rel))
		if err != nil {
			log.Printf("S %s: %s", rel, err)
			return nil
		}
		pages = append(pages, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// FindArticles returns all pages with a date, newest first. The sort
// is stable for equal dates.
func (s *Site) FindArticles() ([]*Page, error) {
	all, err := s.FindAll()
	if err != nil {
		return nil, err
	}
	var articles Pages
	for _, p := range all {
		if _, ok := p.Date(); ok {
			articles = append(articles, p)
		}
	}
	sort.Stable(articles)
	return articles, nil
}

// Menu loads the pages listed in the content root's menu file, one
// logical path per line. A missing menu file yields an empty menu;
// entries naming no existing page are skipped with a log line.
func (s *Site) Menu() ([]*Page, error) {
	b, err := os.ReadFile(filepath.Join(s.ContentDir(), MenuFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []*Page
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := s.Load(line)
		if err != nil {
			if metafile.IsNotFound(err) {
				log.Printf("S menu: no page at %q", line)
				continue
			}
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// StartWatching polls the content tree and purges the page cache when
// anything under it changes. This complements per-entry mtime
// staleness, which only refreshes paths that get requested again.
func (s *Site) StartWatching() error {
	w, err := fspoll.Watch(s.BaseDir, []string{"*~", ".DS_Store"}, 0)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-w.Change:
				log.Printf("* Content changed, purging cache.")
				s.Purge()
			case err := <-w.Error:
				log.Printf("! watcher error: %s", err)
			}
		}
	}()
	s.watcher = w
	return nil
}

// StopWatching stops the content watcher.
func (s *Site) StopWatching() {
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
}

// logicalPath derives a page's logical path from its filename relative
// to the page root: the extension goes, and directory-style pages take
// their directory's path.
func logicalPath(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = rel[:len(rel)-len(path.Ext(rel))]
	if path.Base(rel) == PageFileBase {
		rel = path.Dir(rel)
	}
	return rel
}

// Pages sorts descending by date.
type Pages []*Page

func (pp Pages) Len() int { return len(pp) }
func (pp Pages) Less(i, j int) bool {
	di, _ := pp[i].Date()
	dj, _ := pp[j].Date()
	return di.After(dj)
}
func (pp Pages) Swap(i, j int) { pp[i], pp[j] = pp[j], pp[i] }
