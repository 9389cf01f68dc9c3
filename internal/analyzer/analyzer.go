// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package analyzer orchestrates classification, summarization, the
// extractors, and synthesis into one comprehensive analysis.
package analyzer

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"lexiscan/internal/analysis"
	"lexiscan/internal/classifier"
	"lexiscan/internal/extractors/clause"
	"lexiscan/internal/extractors/compliance"
	"lexiscan/internal/extractors/date"
	"lexiscan/internal/extractors/entity"
	"lexiscan/internal/extractors/financial"
	"lexiscan/internal/extractors/keyterm"
	"lexiscan/internal/extractors/risk"
	"lexiscan/internal/observability"
	"lexiscan/internal/summarizer"
	"lexiscan/internal/synthesis"
)

// structureIndicators gauge whether the text looks like a structured
// legal document.
var structureIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:agreement|contract|terms)\b`),
	regexp.MustCompile(`(?i)\b(?:party|parties)\b`),
	regexp.MustCompile(`(?i)\b(?:section|clause|paragraph)\b`),
	regexp.MustCompile(`(?i)\b(?:effective|date|term)\b`),
}

// Request is one analysis job.
type Request struct {
	Text         string
	DocumentType string
	Filename     string
}

// Analyzer runs the full pipeline. Construct with New.
type Analyzer struct {
	classifier *classifier.Classifier
	summarizer summarizer.Summarizer
	risk       *risk.Extractor
	clause     *clause.Extractor
	keyterm    *keyterm.Extractor
	financial  *financial.Extractor
	date       *date.Extractor
	entity     *entity.Extractor
	compliance *compliance.Extractor

	now func() time.Time
}

// New builds an Analyzer around the given summarizer; a nil summarizer
// means extractive only.
func New(s summarizer.Summarizer) *Analyzer {
	if s == nil {
		s = summarizer.Extractive{}
	}
	return &Analyzer{
		classifier: classifier.New(),
		summarizer: s,
		risk:       risk.New(),
		clause:     clause.New(),
		keyterm:    keyterm.New(),
		financial:  financial.New(),
		date:       date.New(),
		entity:     entity.New(),
		compliance: compliance.New(),
		now:        time.Now,
	}
}

// Analyze runs the full pipeline over one document.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*analysis.Result, error) {
	start := a.now()
	text := req.Text
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("analysis failed: empty document text")
	}

	docType := strings.ToLower(strings.TrimSpace(req.DocumentType))
	if docType == "" || docType == "general" {
		c := a.classifier.Classify(text)
		docType = c.DocumentType
		observability.Log.WithFields(map[string]interface{}{
			"document_type": docType,
			"confidence":    fmt.Sprintf("%.2f", c.Confidence),
		}).Info("auto-classified document")
		observability.Log.Debug(c.Reasoning)
	}

	summary := a.summarize(ctx, text)

	risks := a.risk.Extract(text, docType)
	clauses := a.clause.Extract(text, docType)
	keyTerms := a.keyterm.Extract(text)
	actionItems := synthesis.ActionItems(text, docType, risks, a.now())
	financialImpact := a.financial.Extract(text)
	dates := a.date.Extract(text)
	entities := a.entity.Extract(text)
	complianceItems := a.compliance.Extract(text, docType)
	recommendations := synthesis.Recommendations(docType, risks, clauses, financialImpact)

	confidence := confidenceScore(text, len(risks)+len(clauses)+len(keyTerms)+len(financialImpact))

	elapsed := a.now().Sub(start)
	result := &analysis.Result{
		Summary:         summary,
		Risks:           risks,
		Clauses:         clauses,
		KeyTerms:        keyTerms,
		ActionItems:     actionItems,
		FinancialImpact: financialImpact,
		Dates:           dates,
		Entities:        entities,
		ComplianceItems: complianceItems,
		Recommendations: recommendations,
		ConfidenceScore: confidence,
		Metadata: analysis.Metadata{
			DocumentType:   docType,
			TextLength:     len(text),
			WordCount:      len(strings.Fields(text)),
			ProcessingTime: elapsed.Seconds(),
			AnalysisDate:   a.now(),
			FeatureCounts: map[string]int{
				"risks":            len(risks),
				"clauses":          len(clauses),
				"key_terms":        len(keyTerms),
				"financial_items":  len(financialImpact),
				"compliance_items": len(complianceItems),
			},
		},
	}
	return result, nil
}

// Summarize exposes the configured summarizer with extractive fallback.
func (a *Analyzer) Summarize(ctx context.Context, text string, maxLen int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty document text")
	}
	return a.summarizeWithLen(ctx, text, maxLen), nil
}

func (a *Analyzer) summarize(ctx context.Context, text string) string {
	return a.summarizeWithLen(ctx, text, summarizer.DefaultMaxLength)
}

func (a *Analyzer) summarizeWithLen(ctx context.Context, text string, maxLen int) string {
	summary, err := a.summarizer.Summarize(ctx, text, maxLen)
	if err == nil {
		return summary
	}
	observability.Log.WithError(err).Warn("summarization failed, falling back to extractive")
	summary, _ = summarizer.Extractive{}.Summarize(ctx, text, maxLen)
	return summary
}

// confidenceScore blends text length, finding density, and document
// structure into a 0..1 score rounded to two decimals.
func confidenceScore(text string, featureCount int) float64 {
	var lengthScore float64
	switch {
	case len(text) < 500:
		lengthScore = 0.3
	case len(text) < 2000:
		lengthScore = 0.6
	default:
		lengthScore = 0.9
	}

	featureScore := float64(featureCount) / 20.0
	if featureScore > 0.9 {
		featureScore = 0.9
	}

	structureMatches := 0
	for _, re := range structureIndicators {
		if re.MatchString(text) {
			structureMatches++
		}
	}
	structureScore := float64(structureMatches) / float64(len(structureIndicators))
	if structureScore > 0.8 {
		structureScore = 0.8
	}

	score := lengthScore*0.3 + featureScore*0.4 + structureScore*0.3
	return math.Round(score*100) / 100
}
