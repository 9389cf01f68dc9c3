// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package risk finds risk indicators in document text using the
// severity-tiered pattern tables.
package risk

import (
	"fmt"
	"regexp"
	"strings"

	"lexiscan/internal/analysis"
	"lexiscan/internal/catalog"
)

const contextSize = 100

var nonWord = regexp.MustCompile(`\W+`)

// Extractor scans text with the risk pattern tables.
type Extractor struct{}

// New creates a risk Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the risks found in text, most severe patterns first.
// Findings that share a normalized title are reported once.
func (e *Extractor) Extract(text, docType string) []analysis.Risk {
	var risks []analysis.Risk
	seen := make(map[string]struct{})
	for _, p := range catalog.RiskPatternsFor(docType) {
		loc := p.Regex.FindStringIndex(text)
		if loc == nil {
			continue
		}
		key := normalizeTitle(p.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		match := text[loc[0]:loc[1]]
		context := analysis.Window(text, loc[0], loc[1], contextSize)
		confidence := float64(p.SeverityScore) / 10.0
		if confidence > 1.0 {
			confidence = 1.0
		}
		risks = append(risks, analysis.Risk{
			Level:       catalog.LevelFromScore(p.SeverityScore),
			Title:       p.Title,
			Description: fmt.Sprintf("Match: '%s' - Context: %s...", match, analysis.Clip(context, 200)),
			Confidence:  confidence,
			Category:    p.Category,
			Location:    loc[0],
			Mitigation:  p.Mitigation,
		})
	}
	return risks
}

func normalizeTitle(title string) string {
	return strings.TrimSpace(strings.ToLower(nonWord.ReplaceAllString(title, " ")))
}
