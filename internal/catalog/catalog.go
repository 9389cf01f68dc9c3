// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the curated pattern tables that drive document
// analysis: risk, clause, and compliance patterns, the legal terms
// dictionary, action item templates, and recommendation templates.
// All regexes are compiled once at load; a pattern that fails to compile
// is logged and skipped rather than aborting startup.
package catalog

import (
	"regexp"
	"strings"

	"lexiscan/internal/observability"
)

// RiskPattern describes one risk signature and its severity.
type RiskPattern struct {
	Pattern        string
	Title          string
	Description    string
	Category       string
	SeverityScore  int
	Mitigation     string
	ApplicableDocs []string

	Regex *regexp.Regexp
}

// ClausePattern describes one clause signature.
type ClausePattern struct {
	Type         string
	Title        string
	Pattern      string
	Significance string

	Regex *regexp.Regexp
}

// CompliancePattern describes one compliance obligation signature.
type CompliancePattern struct {
	Category         string
	Pattern          string
	Description      string
	RequirementLevel string

	Regex *regexp.Regexp
}

// LegalTerm is one entry of the legal terms dictionary.
type LegalTerm struct {
	Term       string
	Definition string
	Category   string
	Importance string
}

// ActionTemplate is a canned action item for a document type.
type ActionTemplate struct {
	ID          string
	Task        string
	DaysOffset  int
	Priority    string
	Description string
	Category    string
}

// DeadlinePattern extracts "within N days" style obligations from text.
// The regex captures the number in group 1 and the unit in group 2.
type DeadlinePattern struct {
	Pattern  string
	Priority string
	Category string

	Regex *regexp.Regexp
}

// RiskActionTemplate turns a risk finding into an action item.
type RiskActionTemplate struct {
	TaskPrefix        string
	DaysOffset        int
	Priority          string
	Category          string
	DescriptionPrefix string
}

// LevelFromScore converts a severity score (1-10) to a risk level.
func LevelFromScore(score int) string {
	switch {
	case score >= 8:
		return "critical"
	case score >= 6:
		return "high"
	case score >= 3:
		return "medium"
	default:
		return "low"
	}
}

// TimeMultiplier converts a time unit word to a number of days.
func TimeMultiplier(unit string) int {
	u := strings.ToLower(unit)
	switch {
	case strings.Contains(u, "week"):
		return 7
	case strings.Contains(u, "month"):
		return 30
	case strings.Contains(u, "year"):
		return 365
	default:
		return 1
	}
}

// RiskPatternsFor returns the general risk patterns (most severe tiers
// first) followed by any patterns specific to the document type.
func RiskPatternsFor(docType string) []RiskPattern {
	patterns := make([]RiskPattern, 0, len(criticalRisks)+len(highRisks)+len(mediumRisks)+len(lowRisks))
	patterns = append(patterns, criticalRisks...)
	patterns = append(patterns, highRisks...)
	patterns = append(patterns, mediumRisks...)
	patterns = append(patterns, lowRisks...)
	if specific, ok := documentRisks[strings.ToLower(docType)]; ok {
		patterns = append(patterns, specific...)
	}
	return patterns
}

// ClausePatternsFor returns the general clause patterns followed by any
// patterns specific to the document type.
func ClausePatternsFor(docType string) []ClausePattern {
	patterns := make([]ClausePattern, 0, len(generalClauses))
	patterns = append(patterns, generalClauses...)
	if specific, ok := documentClauses[strings.ToLower(docType)]; ok {
		patterns = append(patterns, specific...)
	}
	return patterns
}

// CompliancePatternsFor returns the compliance patterns for the
// categories relevant to the document type. Unknown types get the
// general category set.
func CompliancePatternsFor(docType string) []CompliancePattern {
	categories, ok := documentCompliance[strings.ToLower(docType)]
	if !ok {
		categories = documentCompliance["general"]
	}
	var patterns []CompliancePattern
	for _, category := range categories {
		patterns = append(patterns, compliancePatterns[category]...)
	}
	return patterns
}

// Terms returns the legal terms dictionary in stable order.
func Terms() []LegalTerm {
	return legalTerms
}

// ActionTemplatesFor returns the action item templates for the document
// type, falling back to the general templates.
func ActionTemplatesFor(docType string) []ActionTemplate {
	if templates, ok := actionTemplates[strings.ToLower(docType)]; ok {
		return templates
	}
	return actionTemplates["general"]
}

// DeadlinePatterns returns the deadline extraction patterns.
func DeadlinePatterns() []DeadlinePattern {
	return deadlinePatterns
}

// RiskActionTemplateFor returns the action template for a risk level,
// falling back to the medium template.
func RiskActionTemplateFor(level string) RiskActionTemplate {
	if t, ok := riskActionTemplates[strings.ToLower(level)]; ok {
		return t
	}
	return riskActionTemplates["medium"]
}

// compileRisks compiles each pattern case-insensitively, dropping
// patterns that fail to compile.
func compileRisks(patterns []RiskPattern) []RiskPattern {
	out := patterns[:0]
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Pattern)
		if err != nil {
			observability.Log.WithField("pattern", p.Pattern).WithError(err).Warn("skipping risk pattern")
			continue
		}
		p.Regex = re
		out = append(out, p)
	}
	return out
}

func compileClauses(patterns []ClausePattern) []ClausePattern {
	out := patterns[:0]
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Pattern)
		if err != nil {
			observability.Log.WithField("pattern", p.Pattern).WithError(err).Warn("skipping clause pattern")
			continue
		}
		p.Regex = re
		out = append(out, p)
	}
	return out
}

func compileCompliance(patterns []CompliancePattern) []CompliancePattern {
	out := patterns[:0]
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Pattern)
		if err != nil {
			observability.Log.WithField("pattern", p.Pattern).WithError(err).Warn("skipping compliance pattern")
			continue
		}
		p.Regex = re
		out = append(out, p)
	}
	return out
}

func compileDeadlines(patterns []DeadlinePattern) []DeadlinePattern {
	out := patterns[:0]
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Pattern)
		if err != nil {
			observability.Log.WithField("pattern", p.Pattern).WithError(err).Warn("skipping deadline pattern")
			continue
		}
		p.Regex = re
		out = append(out, p)
	}
	return out
}

// clauseSet expands a list of raw patterns into ClausePattern values
// sharing a type and significance.
func clauseSet(clauseType, significance string, patterns ...string) []ClausePattern {
	title := clauseTitle(clauseType)
	out := make([]ClausePattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, ClausePattern{
			Type:         clauseType,
			Title:        title,
			Pattern:      p,
			Significance: significance,
		})
	}
	return out
}

func clauseTitle(clauseType string) string {
	words := strings.Split(strings.ReplaceAll(clauseType, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " Clause"
}

func init() {
	criticalRisks = compileRisks(criticalRisks)
	highRisks = compileRisks(highRisks)
	mediumRisks = compileRisks(mediumRisks)
	lowRisks = compileRisks(lowRisks)
	for docType, patterns := range documentRisks {
		documentRisks[docType] = compileRisks(patterns)
	}
	generalClauses = compileClauses(generalClauses)
	for docType, patterns := range documentClauses {
		documentClauses[docType] = compileClauses(patterns)
	}
	for category, patterns := range compliancePatterns {
		compliancePatterns[category] = compileCompliance(patterns)
	}
	deadlinePatterns = compileDeadlines(deadlinePatterns)
}
