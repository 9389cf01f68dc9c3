// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"
)

func TestLevelFromScore(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{10, "critical"},
		{8, "critical"},
		{7, "high"},
		{6, "high"},
		{5, "medium"},
		{3, "medium"},
		{2, "low"},
		{1, "low"},
		{0, "low"},
	}
	for _, tc := range cases {
		if got := LevelFromScore(tc.score); got != tc.want {
			t.Errorf("LevelFromScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestTimeMultiplier(t *testing.T) {
	cases := []struct {
		unit string
		want int
	}{
		{"days", 1},
		{"day", 1},
		{"weeks", 7},
		{"Week", 7},
		{"months", 30},
		{"years", 365},
		{"something else", 1},
	}
	for _, tc := range cases {
		if got := TimeMultiplier(tc.unit); got != tc.want {
			t.Errorf("TimeMultiplier(%q) = %d, want %d", tc.unit, got, tc.want)
		}
	}
}

func TestRiskPatternsCompiled(t *testing.T) {
	patterns := RiskPatternsFor("general")
	if len(patterns) == 0 {
		t.Fatal("expected general risk patterns")
	}
	for _, p := range patterns {
		if p.Regex == nil {
			t.Errorf("risk pattern %q was not compiled", p.Title)
		}
		if p.SeverityScore < 1 || p.SeverityScore > 10 {
			t.Errorf("risk pattern %q has severity %d outside 1-10", p.Title, p.SeverityScore)
		}
	}
}

func TestRiskPatternsFor_DocumentSpecific(t *testing.T) {
	general := RiskPatternsFor("general")
	employment := RiskPatternsFor("employment")
	if len(employment) <= len(general) {
		t.Errorf("expected employment set (%d) to extend the general set (%d)", len(employment), len(general))
	}

	found := false
	for _, p := range employment {
		if p.Title == "Probationary Period" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected employment-specific 'Probationary Period' pattern")
	}
}

func TestClausePatternsFor(t *testing.T) {
	general := ClausePatternsFor("general")
	if len(general) == 0 {
		t.Fatal("expected general clause patterns")
	}
	for _, p := range general {
		if p.Regex == nil {
			t.Errorf("clause pattern %q/%q was not compiled", p.Type, p.Pattern)
		}
	}

	lease := ClausePatternsFor("lease")
	hasRent := false
	for _, p := range lease {
		if p.Type == "rent" {
			hasRent = true
			if p.Title != "Rent Clause" {
				t.Errorf("expected title 'Rent Clause', got %q", p.Title)
			}
		}
	}
	if !hasRent {
		t.Error("expected lease-specific rent clause patterns")
	}
}

func TestClauseTitle(t *testing.T) {
	cases := []struct {
		clauseType string
		want       string
	}{
		{"non_compete", "Non Compete Clause"},
		{"rent", "Rent Clause"},
		{"intellectual_property", "Intellectual Property Clause"},
	}
	for _, tc := range cases {
		if got := clauseTitle(tc.clauseType); got != tc.want {
			t.Errorf("clauseTitle(%q) = %q, want %q", tc.clauseType, got, tc.want)
		}
	}
}

func TestCompliancePatternsFor_UnknownTypeGetsGeneral(t *testing.T) {
	unknown := CompliancePatternsFor("interpretive dance")
	general := CompliancePatternsFor("general")
	if len(unknown) != len(general) {
		t.Errorf("unknown type returned %d patterns, general has %d", len(unknown), len(general))
	}
	if len(general) == 0 {
		t.Fatal("expected general compliance patterns")
	}
}

func TestCompliancePatternsFor_Employment(t *testing.T) {
	categories := make(map[string]bool)
	for _, p := range CompliancePatternsFor("employment") {
		categories[p.Category] = true
		if p.Regex == nil {
			t.Errorf("compliance pattern %q was not compiled", p.Pattern)
		}
	}
	for _, want := range []string{"regulatory", "training", "documentation", "insurance"} {
		if !categories[want] {
			t.Errorf("expected employment compliance category %q", want)
		}
	}
	if categories["reporting"] {
		t.Error("reporting category should not apply to employment documents")
	}
}

func TestTermsStable(t *testing.T) {
	a := Terms()
	b := Terms()
	if len(a) == 0 {
		t.Fatal("expected legal terms")
	}
	for i := range a {
		if a[i].Term != b[i].Term {
			t.Fatalf("terms order changed between calls at index %d", i)
		}
	}
}

func TestActionTemplatesFor(t *testing.T) {
	employment := ActionTemplatesFor("employment")
	if len(employment) != 4 {
		t.Fatalf("expected 4 employment templates, got %d", len(employment))
	}
	if employment[0].ID != "emp_1" {
		t.Errorf("expected first template emp_1, got %q", employment[0].ID)
	}

	fallback := ActionTemplatesFor("unknown type")
	if len(fallback) == 0 {
		t.Fatal("expected general fallback templates")
	}
	if fallback[0].ID != "general_1" {
		t.Errorf("expected general_1 fallback, got %q", fallback[0].ID)
	}
}

func TestRiskActionTemplateFor(t *testing.T) {
	high := RiskActionTemplateFor("high")
	if high.TaskPrefix != "Address high-risk item" {
		t.Errorf("unexpected high task prefix %q", high.TaskPrefix)
	}
	if high.DaysOffset != 5 {
		t.Errorf("expected high offset 5, got %d", high.DaysOffset)
	}

	// Unknown levels fall back to the medium template.
	fallback := RiskActionTemplateFor("catastrophic")
	if fallback.Priority != "medium" {
		t.Errorf("expected medium fallback, got %q", fallback.Priority)
	}
}

func TestDeadlinePatternsCompiled(t *testing.T) {
	patterns := DeadlinePatterns()
	if len(patterns) == 0 {
		t.Fatal("expected deadline patterns")
	}
	for _, p := range patterns {
		if p.Regex == nil {
			t.Errorf("deadline pattern %q was not compiled", p.Pattern)
		}
		m := p.Regex.FindStringSubmatch("must respond within 30 days")
		if p.Category == "compliance" && m == nil {
			t.Error("compliance deadline pattern should match 'must respond within 30 days'")
		}
	}
}
