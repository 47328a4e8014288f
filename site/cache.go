// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"fmt"
	"os"
	"sync"

	"github.com/hesym/plume/metafile"
)

// Cache maps logical paths to loaded pages. An entry is stale and gets
// replaced when the backing file's mtime is newer than the cached
// page's. The mutex makes loads from concurrent requests safe; pages
// themselves are immutable after parsing.
type Cache struct {
	sync.Mutex
	m map[string]*Page
}

func NewCache() *Cache {
	return &Cache{m: make(map[string]*Page)}
}

// load returns the cached page for path if the file at filename is
// unchanged, otherwise parses a fresh one and stores it.
func (c *Cache) load(s *Site, path, filename string) (*Page, error) {
	c.Lock()
	defer c.Unlock()
	fi, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// The file vanished between resolution and read.
			delete(c.m, path)
			return nil, fmt.Errorf("%q: %w", path, metafile.ErrNotFound)
		}
		return nil, err
	}
	if p, ok := c.m[path]; ok && !fi.ModTime().After(p.ModTime()) {
		return p, nil
	}
	p, err := loadPage(s, path, filename)
	if err != nil {
		return nil, err
	}
	c.m[path] = p
	return p, nil
}

// Purge clears all entries unconditionally.
func (c *Cache) Purge() {
	c.Lock()
	defer c.Unlock()
	c.m = make(map[string]*Page)
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.m)
}
