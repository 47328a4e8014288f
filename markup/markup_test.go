// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"
	"testing"
)

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		filename string
		format   Format
		ok       bool
	}{
		{"blog/post1.mdown", Markdown, true},
		{"about.haml", Haml, true},
		{"news/page.textile", Textile, true},
		{"image.png", 0, false},
		{"noext", 0, false},
	}
	for _, tt := range tests {
		f, ok := FormatForFile(tt.filename)
		if ok != tt.ok || (ok && f != tt.format) {
			t.Errorf("FormatForFile(%q) = %v, %v; want %v, %v", tt.filename, f, ok, tt.format, tt.ok)
		}
	}
}

func TestExtractHeading(t *testing.T) {
	tests := []struct {
		format  Format
		content string
		heading string
	}{
		{Markdown, "# My First Post\n\nHello world.\n", "My First Post"},
		{Markdown, "#Tight Title\n\nbody", "Tight Title"},
		{Markdown, "# Closed Title #\n\nbody", "Closed Title"},
		{Markdown, "intro\n\n# Later Heading\n", "Later Heading"},
		{Markdown, "## only a subheading\n", ""},
		{Markdown, "no heading at all\n", ""},
		{Haml, "%h1 Haml Title\n%p body\n", "Haml Title"},
		{Haml, "%p no heading\n", ""},
		{Textile, "h1. Textile Title\n\nbody\n", "Textile Title"},
		{Textile, "h2. subheading\n", ""},
	}
	for _, tt := range tests {
		if got := ExtractHeading(tt.format, tt.content); got != tt.heading {
			t.Errorf("ExtractHeading(%v, %q) = %q; want %q", tt.format, tt.content, got, tt.heading)
		}
	}
}

func TestStripHeading(t *testing.T) {
	got := StripHeading(Markdown, "# My First Post\n\nHello world.\n")
	if got != "Hello world.\n" {
		t.Errorf("StripHeading = %q; want %q", got, "Hello world.\n")
	}
	// No heading: content unchanged.
	const plain = "Hello world.\n"
	if got := StripHeading(Markdown, plain); got != plain {
		t.Errorf("StripHeading = %q; want %q", got, plain)
	}
}

func TestConvertMarkdown(t *testing.T) {
	out, err := Convert(Markdown, []byte("Hello *world*.\n"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !strings.Contains(string(out), "<em>world</em>") {
		t.Errorf("markdown output missing emphasis: %s", out)
	}
}

func TestConvertTextile(t *testing.T) {
	out, err := Convert(Textile, []byte("h1. Title\n\nSome *strong* text.\n"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	s := string(out)
	if !strings.Contains(s, "<h1>Title</h1>") {
		t.Errorf("textile output missing heading: %s", s)
	}
	if !strings.Contains(s, "<p>Some <strong>strong</strong> text.</p>") {
		t.Errorf("textile output missing paragraph: %s", s)
	}
}

func TestConvertHaml(t *testing.T) {
	out, err := Convert(Haml, []byte("%h1 Title\n%p A paragraph\n"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	s := string(out)
	if !strings.Contains(s, "<h1>Title</h1>") || !strings.Contains(s, "<p>A paragraph</p>") {
		t.Errorf("haml output wrong: %s", s)
	}
}
