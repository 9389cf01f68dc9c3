// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package summarizer

import (
	"context"
	"strings"
	"testing"
)

func TestExtractive_ShortTextUnchanged(t *testing.T) {
	text := "A short note. Nothing more to add here today."
	got, err := Extractive{}.Summarize(context.Background(), text, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("short text should pass through unchanged, got %q", got)
	}
}

func TestExtractive_ShortTextTruncated(t *testing.T) {
	text := "This single sentence runs on far longer than the limit allows " + strings.Repeat("and on ", 30)
	got, err := Extractive{}.Summarize(context.Background(), text, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if len(got) != 53 {
		t.Errorf("expected 50 chars plus marker, got %d", len(got))
	}
}

func TestExtractive_PicksKeywordSentences(t *testing.T) {
	text := "The agreement covers general matters between the parties. " +
		"Payment of fees is required on the first of each month. " +
		"The office is located in a large building downtown. " +
		"Termination requires thirty days written notice. " +
		"Nothing else is specified in this document."
	got, err := Extractive{}.Summarize(context.Background(), text, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Payment of fees") {
		t.Errorf("expected the payment sentence, got %q", got)
	}
	if !strings.Contains(got, "Termination requires") {
		t.Errorf("expected the termination sentence, got %q", got)
	}
	if strings.Contains(got, "large building downtown") {
		t.Errorf("keyword-free sentence should be dropped, got %q", got)
	}
	if !strings.HasPrefix(got, "The agreement covers") {
		t.Errorf("summary should open with the first sentence, got %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("summary should end with a period, got %q", got)
	}
}

func TestExtractive_AtMostThreeSentences(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("This sentence mentions the payment obligation clearly. ")
	}
	got, err := Extractive{}.Summarize(context.Background(), b.String(), 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(strings.Split(got, ". ")); n > 3 {
		t.Errorf("expected at most 3 sentences, got %d: %q", n, got)
	}
}

func TestExtractive_ZeroMaxLenUsesDefault(t *testing.T) {
	text := strings.Repeat("word ", 200)
	got, err := Extractive{}.Summarize(context.Background(), text, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) > DefaultMaxLength+3 {
		t.Errorf("expected default cap, got %d chars", len(got))
	}
}
