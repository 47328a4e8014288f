// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metafile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, s string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "content.mdown")
	if err := os.WriteFile(name, []byte(s), 0644); err != nil {
		t.Fatalf("%s", err)
	}
	return name
}

func TestWithMeta(t *testing.T) {
	filename := writeTempFile(t, "Date: 2021-03-01\nRead More: keep going\n\n# Hello\n\nSome content.\n")

	m, err := Open(filename)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !m.HasMeta() {
		t.Errorf("HasMeta returned false, expecting true")
	}
	if v := m.Meta()["date"]; v != "2021-03-01" {
		t.Errorf("expecting date: %q, got %q", "2021-03-01", v)
	}
	// Keys are lowercased, values keep inner spaces.
	if v := m.Meta()["read more"]; v != "keep going" {
		t.Errorf("expecting read more: %q, got %q", "keep going", v)
	}
	if m.Content() != "# Hello\n\nSome content.\n" {
		t.Errorf("content differs: got `%s`", m.Content())
	}
}

func TestNoMeta(t *testing.T) {
	const content = "# Just a heading\n\nNo header here.\n"
	filename := writeTempFile(t, content)

	m, err := Open(filename)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if m.HasMeta() {
		t.Errorf("HasMeta returned true, expecting false")
	}
	// The blank line split must not lose the separator.
	if m.Content() != content {
		t.Errorf("content differs: expecting `%s`, got `%s`", content, m.Content())
	}
}

func TestNoMetaNoBlankLine(t *testing.T) {
	const content = "one line only"
	filename := writeTempFile(t, content)

	m, err := Open(filename)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if m.HasMeta() {
		t.Errorf("HasMeta returned true, expecting false")
	}
	if m.Content() != content {
		t.Errorf("content differs: expecting `%s`, got `%s`", content, m.Content())
	}
}

func TestCRLFNormalized(t *testing.T) {
	filename := writeTempFile(t, "Date: 2021-03-01\r\n\r\nBody text.\r\n")

	m, err := Open(filename)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if !m.HasMeta() {
		t.Fatalf("HasMeta returned false, expecting true")
	}
	if v := m.Meta()["date"]; v != "2021-03-01" {
		t.Errorf("expecting date: %q, got %q", "2021-03-01", v)
	}
	if m.Content() != "Body text.\n" {
		t.Errorf("content differs: got `%s`", m.Content())
	}
}

func TestValueWithColon(t *testing.T) {
	filename := writeTempFile(t, "Atom ID: tag:example.com,2021:post\n\nBody.\n")

	m, err := Open(filename)
	if err != nil {
		t.Fatalf("%s", err)
	}
	// Split happens at the first colon only.
	if v := m.Meta()["atom id"]; v != "tag:example.com,2021:post" {
		t.Errorf("expecting atom id: %q, got %q", "tag:example.com,2021:post", v)
	}
}

func TestMalformedHeaderLine(t *testing.T) {
	filename := writeTempFile(t, "Date: 2021-03-01\nthis line has no colon\n\nBody.\n")

	_, err := Open(filename)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expecting *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expecting error on line 2, got %d", perr.Line)
	}
}

func TestNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.mdown"))
	if !IsNotFound(err) {
		t.Errorf("expecting not-found error, got %v", err)
	}
}
