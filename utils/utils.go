// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utils contains utility functions.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"gopkg.in/yaml.v1"
)

// UnmarshallYAMLFile reads YAML file and unmarshalls it into data.
func UnmarshallYAMLFile(filename string, data interface{}) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, data)
}

// StripEndSlash returns a string with ending slash removed,
// or if there was no slash, returns the original string.
func StripEndSlash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

var dateTemplates = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04 -07:00",
	"2006-01-02 15:04:05 -07:00",
	time.RFC3339,
	time.RFC822,
	time.UnixDate,
	"2 January 2006",
	"January 2, 2006",
	"2006.01.02 15:04",
	"2006.01.02",
	"2006-01-02",
}

// ParseAnyDate parses date in any of the few allowed formats.
func ParseAnyDate(s string) (d time.Time, err error) {
	for _, t := range dateTemplates {
		d, err = time.Parse(t, s)
		if err == nil {
			return
		}
	}
	err = fmt.Errorf("failed to parse date from %q", s)
	return
}

// FileExist returns true if the given file exists and is not a directory.
func FileExist(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

// HasFileExt returns true if filename has one of the given extensions.
// Extensions must start with dot.
func HasFileExt(filename string, extensions []string) bool {
	ext := filepath.Ext(filename)
	for _, v := range extensions {
		if v == ext {
			return true
		}
	}
	return false
}

// ReplaceFileExt replaces file extension with the given string.
// Extension must start with dot.
func ReplaceFileExt(filename string, ext string) string {
	oldext := filepath.Ext(filename)
	return filename[:len(filename)-len(oldext)] + ext
}

// Pool is a worker pool for parallel job processing.
type Pool struct {
	sync.Mutex
	wg   sync.WaitGroup
	jobs chan interface{}
	err  error
}

// NewPool creates a new pool which calls fn for each
// added item and stores the first returned error.
func NewPool(fn func(interface{}) error) *Pool {
	parallelism := runtime.NumCPU()
	p := &Pool{
		jobs: make(chan interface{}, parallelism),
	}
	// Launch workers.
	for i := 0; i < parallelism; i++ {
		go func() {
			for j := range p.jobs {
				err := fn(j)
				if err != nil {
					p.Lock()
					if p.err == nil {
						p.err = err
					}
					p.Unlock()
				}
				p.wg.Done()
			}
		}()
	}
	return p
}

// Add adds a new job to pool. Function passed to
// NewPool will be called for each job in a worker goroutine.
//
// After finishing adding items, Err must be called on the pool
// to wait for unfinished jobs to complete and get the first error.
func (p *Pool) Add(job interface{}) {
	p.wg.Add(1)
	p.jobs <- job
}

func (p *Pool) Err() error {
	p.wg.Wait()
	return p.err
}
