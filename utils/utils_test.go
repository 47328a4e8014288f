// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseAnyDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2021-03-01", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2021-03-01 15:04", time.Date(2021, 3, 1, 15, 4, 0, 0, time.UTC)},
		{"2021.03.01", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"1 March 2021", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"March 1, 2021", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		d, err := ParseAnyDate(tt.in)
		if err != nil {
			t.Errorf("ParseAnyDate(%q): %s", tt.in, err)
			continue
		}
		if !d.Equal(tt.want) {
			t.Errorf("ParseAnyDate(%q) = %v; want %v", tt.in, d, tt.want)
		}
	}
	if _, err := ParseAnyDate("not a date"); err == nil {
		t.Errorf("expecting error for unparseable date")
	}
}

func TestHasFileExt(t *testing.T) {
	exts := []string{".mdown", ".haml", ".textile"}
	if !HasFileExt("blog/post1.mdown", exts) {
		t.Errorf("expecting true for .mdown")
	}
	if HasFileExt("image.png", exts) {
		t.Errorf("expecting false for .png")
	}
}

func TestReplaceFileExt(t *testing.T) {
	if got := ReplaceFileExt("page.sass", ".css"); got != "page.css" {
		t.Errorf("ReplaceFileExt = %q", got)
	}
}

func TestStripEndSlash(t *testing.T) {
	if got := StripEndSlash("http://example.com/"); got != "http://example.com" {
		t.Errorf("StripEndSlash = %q", got)
	}
	if got := StripEndSlash("x"); got != "x" {
		t.Errorf("StripEndSlash = %q", got)
	}
}

func TestPool(t *testing.T) {
	sum := make([]int, 100)
	p := NewPool(func(job interface{}) error {
		i := job.(int)
		sum[i] = i
		return nil
	})
	for i := 0; i < 100; i++ {
		p.Add(i)
	}
	if err := p.Err(); err != nil {
		t.Fatalf("%s", err)
	}
	for i := 0; i < 100; i++ {
		if sum[i] != i {
			t.Fatalf("job %d didn't run", i)
		}
	}
}

func TestPoolError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPool(func(job interface{}) error {
		if job.(int) == 7 {
			return boom
		}
		return nil
	})
	for i := 0; i < 20; i++ {
		p.Add(i)
	}
	if err := p.Err(); err != boom {
		t.Errorf("expecting first error, got %v", err)
	}
}
