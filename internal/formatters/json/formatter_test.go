// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Summary: "An employment agreement with standard terms.",
		Risks: []analysis.Risk{
			{Level: "high", Title: "Non-Compete Restrictions", Confidence: 0.8},
			{Level: "low", Title: "Minor Concern", Confidence: 0.2},
		},
		ConfidenceScore: 0.75,
		Metadata: analysis.Metadata{
			DocumentType: "employment",
			WordCount:    120,
		},
	}
}

func TestFormat_ValidJSON(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(sampleResult(), formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	meta, ok := decoded["analysis_metadata"].(map[string]interface{})
	if !ok {
		t.Fatal("missing analysis_metadata object")
	}
	if meta["document_type"] != "employment" {
		t.Errorf("expected document_type=employment, got %v", meta["document_type"])
	}
	if decoded["summary"] != "An employment agreement with standard terms." {
		t.Errorf("unexpected summary: %v", decoded["summary"])
	}
}

func TestFormat_FiltersRisks(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(sampleResult(), formatters.FormatterOptions{ConfidenceThreshold: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded analysis.Result
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Risks) != 1 || decoded.Risks[0].Title != "Non-Compete Restrictions" {
		t.Errorf("expected only the high-confidence risk, got %v", decoded.Risks)
	}
}

func TestFormat_FilterDoesNotMutateInput(t *testing.T) {
	f := NewFormatter()
	result := sampleResult()
	if _, err := f.Format(result, formatters.FormatterOptions{ConfidenceThreshold: 0.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Risks) != 2 {
		t.Errorf("input result should keep all risks, got %d", len(result.Risks))
	}
}

func TestFormat_NilResult(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "{}" {
		t.Errorf("expected empty object, got %q", out)
	}
}

func TestMetadata(t *testing.T) {
	f := NewFormatter()
	if f.Name() != "json" {
		t.Errorf("unexpected name %q", f.Name())
	}
	if f.FileExtension() != ".json" {
		t.Errorf("unexpected extension %q", f.FileExtension())
	}
}
