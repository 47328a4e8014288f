// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexer builds a JSON search index over rendered pages.
package indexer

import (
	"encoding/json"
	"io"
	"strings"
	"unicode"

	"github.com/dchest/stemmer/porter2"
	"golang.org/x/net/html"
)

type Index struct {
	Docs       []*Document              `json:"docs"`
	Words      map[string][]interface{} `json:"words"`
	wordsToDoc map[string]map[int]float64

	TitleWeight float64 `json:"-"`
}

type Document struct {
	URL   string `json:"u"`
	Title string `json:"t"`
}

func New() *Index {
	return &Index{
		Docs:        make([]*Document, 0),
		Words:       make(map[string][]interface{}),
		wordsToDoc:  make(map[string]map[int]float64), // word => doc => weight
		TitleWeight: 5,
	}
}

func (n *Index) WriteJSON(w io.Writer) error {
	for word, m := range n.wordsToDoc {
		for doc, weight := range m {
			// Normalize weight
			normWeight := int(weight * 1000)
			if normWeight < 1 {
				normWeight = 1
			}
			if normWeight == 1 {
				n.Words[word] = append(n.Words[word], doc)
			} else {
				n.Words[word] = append(n.Words[word], [2]int{doc, normWeight})
			}
		}
	}
	return json.NewEncoder(w).Encode(n)
}

func (n *Index) addWord(word string, doc int, weight float64) {
	m := n.wordsToDoc[word]
	if m == nil {
		m = make(map[int]float64)
		n.wordsToDoc[word] = m
	}
	m[doc] += weight
}

func (n *Index) newDocument(url, title string) int {
	n.Docs = append(n.Docs, &Document{URL: url, Title: title})
	return len(n.Docs) - 1
}

func stem(word string) string {
	if strings.ContainsAny(word, "0123456789") {
		return word // don't stem words with digits
	}
	return porter2.Stemmer.Stem(word)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (n *Index) addString(doc int, text string, wordWeight float64) {
	wordcnt := make(map[string]float64)
	for _, w := range tokenize(text) {
		if isStopWord(w) {
			continue
		}
		wordcnt[stem(w)] += wordWeight
		wordWeight /= 1.1
		if wordWeight < 0.0001 {
			wordWeight = 0.0001
		}
	}
	for w, c := range wordcnt {
		scaled := c / float64(len(wordcnt))
		if scaled < 0.0001 {
			scaled = 0.0001
		}
		n.addWord(w, doc, scaled)
	}
}

// AddText indexes a plain text document.
func (n *Index) AddText(url, title, text string) {
	doc := n.newDocument(url, title)
	n.addString(doc, title, n.TitleWeight)
	n.addString(doc, text, 1)
}

// AddHTML indexes an HTML document, using only its text content.
func (n *Index) AddHTML(url, title string, r io.Reader) error {
	text, err := extractText(r)
	if err != nil {
		return err
	}
	n.AddText(url, title, text)
	return nil
}

// extractText returns the concatenated text nodes of an HTML document.
func extractText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return b.String(), nil
			}
			return "", z.Err()
		case html.TextToken:
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
}
