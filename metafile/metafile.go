// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metafile implements reading of content files with an optional
// "Key: value" metadata header.
//
// A header is the block of lines before the first blank line, and only
// counts as a header if its first line looks like "Key: value". Keys are
// lowercased, values are trimmed. Files without a header are all content.
package metafile

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// ErrNotFound is returned by Open when no file backs the requested
// content. Callers routing page requests use it to tell "no such page"
// from real I/O errors.
var ErrNotFound = errors.New("content not found")

// IsNotFound reports whether err signals missing content.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ParseError describes a malformed metadata header line. It is local to
// one file: scans over many files skip the file and continue.
type ParseError struct {
	Filename string
	Line     int
	Text     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: malformed metadata line %q", e.Filename, e.Line, e.Text)
}

// headerRx decides whether the first block is a metadata header:
// word characters or spaces followed by a colon.
var headerRx = regexp.MustCompile(`^[\w ]+:`)

// File is a content file split into an optional metadata header and a
// markup body. It is immutable once returned by Open.
type File struct {
	name    string
	hasMeta bool
	meta    map[string]string
	content string
	mtime   time.Time
}

// Open reads and parses the named file. A nonexistent file yields
// ErrNotFound, a header line without a colon yields *ParseError.
func Open(name string) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	b, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	m := &File{name: name, mtime: fi.ModTime()}
	if err := m.parse(string(b)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *File) parse(s string) error {
	// Normalize line endings once, so the blank-line split does not
	// depend on the file's newline convention.
	s = strings.ReplaceAll(s, "\r\n", "\n")

	head, rest, split := strings.Cut(s, "\n\n")
	if !split || !headerRx.MatchString(firstLine(head)) {
		// No header: keep the whole file as content, including the
		// blank line the split would otherwise swallow.
		m.content = s
		return nil
	}
	meta := make(map[string]string)
	for i, line := range strings.Split(head, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return &ParseError{Filename: m.name, Line: i + 1, Text: line}
		}
		meta[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	m.hasMeta = true
	m.meta = meta
	m.content = rest
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Name returns the name of the backing file.
func (m *File) Name() string { return m.name }

// ModTime returns the modification time of the backing file at the
// moment it was read.
func (m *File) ModTime() time.Time { return m.mtime }

// HasMeta reports whether the file had a metadata header.
func (m *File) HasMeta() bool { return m.hasMeta }

// Meta returns the parsed header with lowercased keys,
// or nil if the file had no header.
func (m *File) Meta() map[string]string { return m.meta }

// Content returns the markup body with the header stripped.
func (m *File) Content() string { return m.content }
