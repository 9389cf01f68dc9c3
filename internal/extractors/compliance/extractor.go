// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package compliance detects compliance obligations in document text
// using the category pattern tables.
package compliance

import (
	"sort"

	"lexiscan/internal/analysis"
	"lexiscan/internal/catalog"
)

const contextSize = 100

// Extractor scans text with the compliance pattern tables.
type Extractor struct{}

// New creates a compliance Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the compliance items found in text for the
// categories relevant to the document type, sorted by location.
func (e *Extractor) Extract(text, docType string) []analysis.ComplianceItem {
	var items []analysis.ComplianceItem
	for _, p := range catalog.CompliancePatternsFor(docType) {
		for _, loc := range p.Regex.FindAllStringIndex(text, -1) {
			items = append(items, analysis.ComplianceItem{
				Type:             p.Category,
				Description:      p.Description,
				RequirementLevel: p.RequirementLevel,
				Context:          analysis.Window(text, loc[0], loc[1], contextSize),
				Location:         loc[0],
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Location < items[j].Location })
	return items
}
