// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"
	"time"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Summary: "An employment agreement with standard terms.",
		Risks: []analysis.Risk{
			{Level: "high", Title: "Non-Compete Restrictions", Description: "Restricts future employment.", Confidence: 0.8, Mitigation: "Negotiate the scope."},
		},
		Clauses: []analysis.Clause{
			{Type: "termination", Title: "Termination Clause", Content: "Either party may terminate.", Significance: "high"},
		},
		KeyTerms: []analysis.KeyTerm{
			{Term: "Arbitration", Definition: "Dispute resolution outside of court."},
		},
		FinancialImpact: []analysis.FinancialItem{
			{Type: "salary", Amount: 85000, Currency: "USD"},
		},
		Dates: []analysis.DateItem{
			{Type: "effective_date", Date: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), OriginalText: "01/15/2026"},
		},
		Recommendations: []string{"⚠️ 1 high-risk item identified. Consider consulting with a legal professional."},
		ConfidenceScore: 0.75,
		Metadata: analysis.Metadata{
			DocumentType: "employment",
			WordCount:    120,
		},
	}
}

func TestFormat_Sections(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(sampleResult(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"DOCUMENT ANALYSIS",
		"Document type: employment",
		"SUMMARY",
		"RISKS (1)",
		"[HIGH] Non-Compete Restrictions",
		"CLAUSES (1)",
		"Termination Clause",
		"KEY TERMS (1)",
		"Arbitration",
		"FINANCIAL ITEMS (1)",
		"salary: 85000.00 USD",
		"DATES (1)",
		"2026-01-15",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFormat_VerboseShowsDetail(t *testing.T) {
	f := NewFormatter()

	terse, err := f.Format(sampleResult(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(terse, "Restricts future employment.") {
		t.Error("risk description should be hidden without verbose")
	}

	verbose, err := f.Format(sampleResult(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(verbose, "Restricts future employment.") {
		t.Error("verbose output should include the risk description")
	}
	if !strings.Contains(verbose, "Mitigation: Negotiate the scope.") {
		t.Error("verbose output should include the mitigation")
	}
}

func TestFormat_ThresholdHidesRisks(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(sampleResult(), formatters.FormatterOptions{NoColor: true, ConfidenceThreshold: 0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "RISKS") {
		t.Errorf("low-confidence risks should be filtered out, got %q", out)
	}
}

func TestFormat_NilResult(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "No analysis result." {
		t.Errorf("unexpected output for nil result: %q", out)
	}
}
