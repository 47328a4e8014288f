// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestAddHTML(t *testing.T) {
	idx := New()
	err := idx.AddHTML("/blog/post1", "My First Post",
		strings.NewReader("<p>Hello <em>world</em>, this is cycling news.</p>"))
	if err != nil {
		t.Fatalf("%s", err)
	}

	var buf bytes.Buffer
	if err := idx.WriteJSON(&buf); err != nil {
		t.Fatalf("%s", err)
	}

	var out struct {
		Docs []struct {
			URL   string `json:"u"`
			Title string `json:"t"`
		} `json:"docs"`
		Words map[string][]interface{} `json:"words"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("%s", err)
	}
	if len(out.Docs) != 1 || out.Docs[0].URL != "/blog/post1" {
		t.Errorf("docs = %v", out.Docs)
	}
	// Words are stemmed ("cycling" -> "cycl") and markup is ignored.
	if _, ok := out.Words["cycl"]; !ok {
		t.Errorf("missing stemmed word, got %v", out.Words)
	}
	// Stop words don't get indexed.
	if _, ok := out.Words["this"]; ok {
		t.Errorf("stop word indexed")
	}
}

func TestTitleWeighted(t *testing.T) {
	idx := New()
	idx.AddText("/a", "zebra", "plain text")

	w := idx.wordsToDoc["zebra"][0]
	if w <= idx.wordsToDoc["plain"][0] {
		t.Errorf("title word weight %v not above body word weight %v", w, idx.wordsToDoc["plain"][0])
	}
}

func TestStemSkipsDigits(t *testing.T) {
	if got := stem("utf8"); got != "utf8" {
		t.Errorf("stem(utf8) = %q", got)
	}
}
