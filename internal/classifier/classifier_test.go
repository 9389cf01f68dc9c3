// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"strings"
	"testing"
)

const employmentText = `This Employment Agreement is entered into between the employer
and the employee. The employee's salary and benefits are described in Exhibit A.
Termination of employment requires thirty days written notice from either party.`

func TestClassify_Employment(t *testing.T) {
	result := New().Classify(employmentText)
	if result.DocumentType != "employment" {
		t.Fatalf("expected employment, got %q (reasoning: %s)", result.DocumentType, result.Reasoning)
	}
	if result.Confidence < DefaultThreshold {
		t.Errorf("expected confidence >= %v, got %v", DefaultThreshold, result.Confidence)
	}
	if !strings.Contains(result.Reasoning, "employment") {
		t.Errorf("reasoning should name the matched type, got %q", result.Reasoning)
	}
}

func TestClassify_GenericTextIsGeneral(t *testing.T) {
	result := New().Classify("The quick brown fox jumps over the lazy dog near the riverbank at noon.")
	if result.DocumentType != "general" {
		t.Errorf("expected general, got %q", result.DocumentType)
	}
	if !strings.Contains(result.Reasoning, "threshold") {
		t.Errorf("fallback reasoning should mention the threshold, got %q", result.Reasoning)
	}
}

func TestClassify_EmptyText(t *testing.T) {
	result := New().Classify("")
	if result.DocumentType != "general" {
		t.Errorf("expected general for empty text, got %q", result.DocumentType)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %v", result.Confidence)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New()
	first := c.Classify(employmentText)
	for i := 0; i < 5; i++ {
		again := c.Classify(employmentText)
		if again.DocumentType != first.DocumentType || again.Confidence != first.Confidence {
			t.Fatalf("classification changed between runs: %+v vs %+v", first, again)
		}
	}
}

func TestClassify_AlternativesCapped(t *testing.T) {
	// Blend signals from several types so multiple candidates score.
	text := `Employment agreement with salary and benefits. Invoice number 42 with
amount due. Monthly rent payment under this lease agreement for the premises.
Tuition fees for the semester are due at registration.`
	result := New().Classify(text)
	if len(result.Alternatives) > 3 {
		t.Errorf("expected at most 3 alternatives, got %d", len(result.Alternatives))
	}
	for _, alt := range result.Alternatives {
		if alt.Score <= 0.1 {
			t.Errorf("alternative %q has score %v below the reporting floor", alt.DocumentType, alt.Score)
		}
	}
}

func TestNewWithThreshold(t *testing.T) {
	// A threshold of zero accepts the best candidate even on weak text.
	c := NewWithThreshold(0)
	result := c.Classify("salary for the employee position")
	if result.DocumentType == "general" {
		t.Errorf("zero threshold should report the best candidate, got general")
	}
}
