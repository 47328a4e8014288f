// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filters

import (
	"testing"
)

func TestMakeUnknown(t *testing.T) {
	if f := Make("no-such-filter", nil); f != nil {
		t.Errorf("expecting nil for unknown filter, got %v", f)
	}
}

func TestCollectionAddFromYAML(t *testing.T) {
	c := NewCollection()
	if err := c.AddFromYAML(".css", "cssmin"); err != nil {
		t.Fatalf("%s", err)
	}
	if f := c.Get(".css"); f == nil || f.Name() != "cssmin" {
		t.Errorf("expecting cssmin filter, got %v", f)
	}
	if err := c.AddFromYAML(".html", 42); err == nil {
		t.Errorf("expecting error for non-string filter line")
	}
}

func TestApplyFilterMissingKey(t *testing.T) {
	c := NewCollection()
	in := []byte("unchanged")
	out, err := c.ApplyFilter(".txt", in)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if string(out) != "unchanged" {
		t.Errorf("expecting passthrough, got %q", out)
	}
}

func TestApplyFilterDisabled(t *testing.T) {
	c := NewCollection()
	if err := c.Add(".css", "cssmin", nil); err != nil {
		t.Fatalf("%s", err)
	}
	c.SetEnabled(false)
	in := []byte("body {  color : red ; }")
	out, err := c.ApplyFilter(".css", in)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if string(out) != string(in) {
		t.Errorf("disabled collection must pass input through")
	}
}
