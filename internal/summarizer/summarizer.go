// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package summarizer produces document summaries. The extractive
// summarizer works offline; the OpenAI summarizer produces abstractive
// summaries when an API key is configured.
package summarizer

import (
	"context"
	"regexp"
	"strings"
)

// DefaultMaxLength bounds summary length when the caller does not set one.
const DefaultMaxLength = 500

// Summarizer produces a summary of at most maxLen characters.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLen int) (string, error)
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// importantTerms mark sentences worth keeping in an extractive summary.
var importantTerms = []string{"payment", "obligation", "termination", "penalty", "agreement", "contract"}

// Extractive picks representative sentences from the text. It never
// fails, making it the fallback for every other summarizer.
type Extractive struct{}

// Summarize implements Summarizer.
func (Extractive) Summarize(_ context.Context, text string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 20 {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) <= 3 {
		if len(text) > maxLen {
			return text[:maxLen] + "...", nil
		}
		return text, nil
	}

	summary := []string{sentences[0]}
	for _, s := range sentences[1:] {
		if len(summary) >= 3 {
			break
		}
		lower := strings.ToLower(s)
		for _, term := range importantTerms {
			if strings.Contains(lower, term) {
				summary = append(summary, s)
				break
			}
		}
	}
	if len(summary) < 2 && len(sentences) > 2 {
		summary = append(summary, sentences[len(sentences)/2])
	}
	return strings.Join(summary, ". ") + ".", nil
}
