// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package keyterm looks up entries of the legal terms dictionary in
// document text.
package keyterm

import (
	"regexp"
	"sync"

	"lexiscan/internal/analysis"
	"lexiscan/internal/catalog"
	"lexiscan/internal/observability"
)

const contextSize = 75

// Extractor matches the legal terms dictionary against text.
type Extractor struct{}

// New creates a keyterm Extractor.
func New() *Extractor {
	return &Extractor{}
}

var (
	compileOnce sync.Once
	termRegexes []*regexp.Regexp
)

// compiled builds one case-insensitive literal regex per dictionary
// term, aligned by index with catalog.Terms().
func compiled() []*regexp.Regexp {
	compileOnce.Do(func() {
		terms := catalog.Terms()
		termRegexes = make([]*regexp.Regexp, len(terms))
		for i, t := range terms {
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(t.Term) + `\b`)
			if err != nil {
				observability.Log.WithField("term", t.Term).WithError(err).Warn("skipping legal term")
				continue
			}
			termRegexes[i] = re
		}
	})
	return termRegexes
}

// Extract returns the dictionary terms present in text. Only the first
// occurrence of each term is reported.
func (e *Extractor) Extract(text string) []analysis.KeyTerm {
	var found []analysis.KeyTerm
	regexes := compiled()
	for i, t := range catalog.Terms() {
		re := regexes[i]
		if re == nil {
			continue
		}
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		found = append(found, analysis.KeyTerm{
			Term:       titleCase(t.Term),
			Definition: t.Definition,
			Category:   t.Category,
			Context:    analysis.Window(text, loc[0], loc[1], contextSize),
			Importance: t.Importance,
			Location:   loc[0],
		})
	}
	return found
}

// titleCase capitalizes the letter following any non-letter, so
// "at-will employment" becomes "At-Will Employment".
func titleCase(term string) string {
	b := []byte(term)
	prevLetter := false
	for i, c := range b {
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if isLetter && !prevLetter && c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
		prevLetter = isLetter
	}
	return string(b)
}
