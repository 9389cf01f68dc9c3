// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier scores document text against per-type indicator
// patterns to detect the document type before extraction runs.
package classifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"lexiscan/internal/observability"
)

// DefaultThreshold is the minimum normalized score a type must reach
// to be reported instead of "general".
const DefaultThreshold = 0.7

// Alternative is a candidate type that scored below the winner.
type Alternative struct {
	DocumentType string  `json:"document_type"`
	Score        float64 `json:"score"`
}

// Result describes the classification outcome.
type Result struct {
	DocumentType string        `json:"document_type"`
	Confidence   float64       `json:"confidence"`
	Reasoning    string        `json:"reasoning"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

type compiledType struct {
	documentType string
	strong       []*regexp.Regexp
	moderate     []*regexp.Regexp
	contextWords []string
}

// Classifier matches document text against the compiled indicator
// sets. Construct with New; the zero value is unusable.
type Classifier struct {
	types     []compiledType
	threshold float64
}

// New builds a Classifier with DefaultThreshold.
func New() *Classifier {
	return NewWithThreshold(DefaultThreshold)
}

// NewWithThreshold builds a Classifier with a custom acceptance
// threshold. Patterns that fail to compile are skipped with a warning.
func NewWithThreshold(threshold float64) *Classifier {
	c := &Classifier{threshold: threshold}
	for _, tp := range classificationPatterns {
		ct := compiledType{documentType: tp.DocumentType, contextWords: tp.ContextWords}
		ct.strong = compileAll(tp.DocumentType, tp.Strong)
		ct.moderate = compileAll(tp.DocumentType, tp.Moderate)
		c.types = append(c.types, ct)
	}
	return c
}

func compileAll(docType string, patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			observability.Log.WithField("document_type", docType).
				Warnf("skipping classifier pattern %q: %v", p, err)
			continue
		}
		out = append(out, re)
	}
	return out
}

// Classify scores text against every known type and returns the best
// match, or "general" when no type clears the threshold.
func (c *Classifier) Classify(text string) Result {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return Result{
			DocumentType: "general",
			Confidence:   0,
			Reasoning:    "empty document",
		}
	}

	type scored struct {
		documentType string
		score        float64
		indicators   []string
	}
	lower := strings.ToLower(text)
	results := make([]scored, 0, len(c.types))
	for _, ct := range c.types {
		raw := 0
		var indicators []string
		for _, re := range ct.strong {
			n := len(re.FindAllStringIndex(text, -1))
			if n > 0 {
				raw += 3 * n
				indicators = append(indicators, re.String())
			}
		}
		for _, re := range ct.moderate {
			n := len(re.FindAllStringIndex(text, -1))
			if n > 0 {
				raw += 2 * n
			}
		}
		for _, word := range ct.contextWords {
			n := strings.Count(lower, word)
			if n > 5 {
				n = 5
			}
			raw += n
		}
		score := float64(raw) / (float64(wordCount) * 0.01)
		if score > 1.0 {
			score = 1.0
		}
		results = append(results, scored{documentType: ct.documentType, score: score, indicators: indicators})
	}

	// Stable sort keeps the declared type order on ties.
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	best := results[0]
	var alternatives []Alternative
	for _, r := range results[1:] {
		if r.score > 0.1 && len(alternatives) < 3 {
			alternatives = append(alternatives, Alternative{DocumentType: r.documentType, Score: r.score})
		}
	}

	if best.score < c.threshold {
		return Result{
			DocumentType: "general",
			Confidence:   best.score,
			Reasoning:    fmt.Sprintf("no type reached the %.2f threshold; best candidate was %s (%.2f)", c.threshold, best.documentType, best.score),
			Alternatives: alternatives,
		}
	}

	reasoning := fmt.Sprintf("matched %s with score %.2f", best.documentType, best.score)
	if len(best.indicators) > 0 {
		shown := best.indicators
		if len(shown) > 3 {
			shown = shown[:3]
		}
		reasoning += "; key indicators: " + strings.Join(shown, ", ")
	}
	return Result{
		DocumentType: best.documentType,
		Confidence:   best.score,
		Reasoning:    reasoning,
		Alternatives: alternatives,
	}
}
