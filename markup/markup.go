// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup implements the supported page markup formats and their
// conversion to HTML.
package markup

import (
	"fmt"
	"path/filepath"
)

// Format identifies a supported markup format.
type Format int

const (
	Markdown Format = iota
	Haml
	Textile
)

// Formats lists the supported formats in resolution priority order:
// the first format with an existing file wins.
var Formats = []Format{Markdown, Haml, Textile}

var formatNames = map[Format]string{
	Markdown: "markdown",
	Haml:     "haml",
	Textile:  "textile",
}

var formatExtensions = map[Format]string{
	Markdown: ".mdown",
	Haml:     ".haml",
	Textile:  ".textile",
}

func (f Format) String() string { return formatNames[f] }

// Ext returns the file extension for the format, starting with dot.
func (f Format) Ext() string { return formatExtensions[f] }

// Extensions returns the file extensions of all supported formats.
func Extensions() []string {
	exts := make([]string, 0, len(Formats))
	for _, f := range Formats {
		exts = append(exts, f.Ext())
	}
	return exts
}

// FormatForFile returns the format matching the filename extension.
func FormatForFile(filename string) (Format, bool) {
	ext := filepath.Ext(filename)
	for _, f := range Formats {
		if f.Ext() == ext {
			return f, true
		}
	}
	return 0, false
}

// Converter renders markup text to HTML.
type Converter interface {
	Name() string
	Render(content []byte) ([]byte, error)
}

// converters maps each format to its converter. Formats are a closed
// enumeration, so the table is filled by init functions in this package;
// Register is still exported so callers can swap in their own renderer.
var converters = make(map[Format]Converter)

// Register sets the converter used for the given format.
func Register(f Format, c Converter) {
	converters[f] = c
}

// Convert renders content in the given format to HTML.
func Convert(f Format, content []byte) ([]byte, error) {
	c := converters[f]
	if c == nil {
		return nil, fmt.Errorf("no converter for format %q", f)
	}
	return c.Render(content)
}

// ConvertDefault renders content through the default converter, used
// where no format-specific choice applies (such as summaries of
// non-textile pages).
func ConvertDefault(content []byte) ([]byte, error) {
	return Convert(Markdown, content)
}
