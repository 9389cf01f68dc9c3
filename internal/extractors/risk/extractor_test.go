// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"strings"
	"testing"
)

func TestExtract_CriticalRisk(t *testing.T) {
	text := "The contractor accepts unlimited liability for all losses arising under this agreement."
	risks := New().Extract(text, "general")
	if len(risks) != 1 {
		t.Fatalf("expected 1 risk, got %d", len(risks))
	}
	r := risks[0]
	if r.Level != "critical" {
		t.Errorf("expected critical level, got %q", r.Level)
	}
	if r.Title != "Unlimited Liability Exposure" {
		t.Errorf("unexpected title %q", r.Title)
	}
	if r.Confidence != 1.0 {
		t.Errorf("severity 10 should map to confidence 1.0, got %v", r.Confidence)
	}
	if !strings.HasPrefix(r.Description, "Match: 'unlimited liability'") {
		t.Errorf("description should quote the match, got %q", r.Description)
	}
	if r.Mitigation == "" {
		t.Error("expected a mitigation suggestion")
	}
}

func TestExtract_FirstMatchOnly(t *testing.T) {
	text := "A late fee applies to overdue invoices. A second late fee applies after sixty days."
	risks := New().Extract(text, "general")
	count := 0
	for _, r := range risks {
		if r.Title == "Late Payment Fees" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one finding per pattern, got %d", count)
	}
}

func TestExtract_DedupByTitle(t *testing.T) {
	// "Material Adverse Change" exists in both the general and the
	// loan-specific tables; one finding should survive.
	text := "Any material adverse change in the borrower's condition permits the lender to act."
	risks := New().Extract(text, "loan")
	count := 0
	for _, r := range risks {
		if r.Title == "Material Adverse Change" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected deduplicated title, got %d findings", count)
	}
}

func TestExtract_DocumentSpecificPatterns(t *testing.T) {
	text := "Employment is subject to a background check before the start date."
	risks := New().Extract(text, "employment")
	found := false
	for _, r := range risks {
		if r.Title == "Background Check Required" {
			found = true
			if r.Level != "medium" {
				t.Errorf("severity 3 should map to medium, got %q", r.Level)
			}
		}
	}
	if !found {
		t.Error("expected employment-specific background check risk")
	}

	// The same text with a different type should not use employment patterns.
	risks = New().Extract(text, "lease")
	for _, r := range risks {
		if r.Title == "Background Check Required" {
			t.Error("employment-specific pattern leaked into lease analysis")
		}
	}
}

func TestExtract_NoFindings(t *testing.T) {
	risks := New().Extract("A short and harmless memo about lunch plans.", "general")
	if len(risks) != 0 {
		t.Errorf("expected no risks, got %d", len(risks))
	}
}

func TestNormalizeTitle(t *testing.T) {
	if got := normalizeTitle("Attorney Fees - Prevailing Party"); got != "attorney fees prevailing party" {
		t.Errorf("normalizeTitle = %q", got)
	}
}
