// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package clause identifies contract clauses and captures their
// surrounding content.
package clause

import (
	"sort"

	"lexiscan/internal/analysis"
	"lexiscan/internal/catalog"
)

const (
	contextSize = 300
	dedupWindow = 200
)

// Extractor scans text with the clause pattern tables.
type Extractor struct{}

// New creates a clause Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the clauses found in text sorted by location.
// Findings of the same type within dedupWindow characters of each
// other collapse to the first one.
func (e *Extractor) Extract(text, docType string) []analysis.Clause {
	var clauses []analysis.Clause
	for _, p := range catalog.ClausePatternsFor(docType) {
		for _, loc := range p.Regex.FindAllStringIndex(text, -1) {
			clauses = append(clauses, analysis.Clause{
				Type:         p.Type,
				Title:        p.Title,
				Content:      analysis.Window(text, loc[0], loc[1], contextSize),
				Significance: p.Significance,
				Location:     loc[0],
				MatchedText:  text[loc[0]:loc[1]],
			})
		}
	}
	sort.SliceStable(clauses, func(i, j int) bool { return clauses[i].Location < clauses[j].Location })
	return dedupe(clauses)
}

func dedupe(clauses []analysis.Clause) []analysis.Clause {
	var out []analysis.Clause
	lastByType := make(map[string]int)
	for _, c := range clauses {
		if last, ok := lastByType[c.Type]; ok && c.Location-last < dedupWindow {
			continue
		}
		lastByType[c.Type] = c.Location
		out = append(out, c)
	}
	return out
}
