// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package analysis defines the result types shared by the extractors,
// the synthesis layer, and the analyzer.
package analysis

import "time"

// Risk is a single risk finding located in the document text.
type Risk struct {
	Level       string  `json:"level"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Category    string  `json:"category"`
	Location    int     `json:"location"`
	Mitigation  string  `json:"mitigation,omitempty"`
}

// Clause is an identified contract clause with its surrounding content.
type Clause struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Significance string `json:"significance"`
	Location     int    `json:"location"`
	MatchedText  string `json:"matched_text"`
}

// KeyTerm is a recognized legal term together with its definition.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
	Context    string `json:"context"`
	Importance string `json:"importance"`
	Location   int    `json:"location"`
}

// FinancialItem is a monetary amount or financial obligation found in the text.
type FinancialItem struct {
	Type        string            `json:"type"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Context     string            `json:"context"`
	Confidence  float64           `json:"confidence"`
	Location    int               `json:"location"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// DateItem is a resolved date reference. Type is "absolute", "relative",
// or a deadline category such as "due_date" or "expiration".
type DateItem struct {
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
	OriginalText string    `json:"original_text"`
	Context      string    `json:"context"`
	Location     int       `json:"location"`
	Confidence   float64   `json:"confidence"`
}

// Entity is a named entity such as a person, organization, or legal reference.
type Entity struct {
	Text            string            `json:"text"`
	Type            string            `json:"type"`
	Confidence      float64           `json:"confidence"`
	Start           int               `json:"start_position"`
	End             int               `json:"end_position"`
	Context         string            `json:"context"`
	NormalizedValue string            `json:"normalized_value,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// ComplianceItem is a detected compliance obligation.
type ComplianceItem struct {
	Type             string `json:"type"`
	Description      string `json:"description"`
	RequirementLevel string `json:"requirement_level"`
	Context          string `json:"context"`
	Location         int    `json:"location"`
}

// ActionItem is a follow-up task synthesized from the analysis.
type ActionItem struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	Deadline    time.Time `json:"deadline"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
}

// Metadata describes the analyzed document and the analysis run.
type Metadata struct {
	DocumentType   string         `json:"document_type"`
	TextLength     int            `json:"text_length"`
	WordCount      int            `json:"word_count"`
	ProcessingTime float64        `json:"processing_time"`
	AnalysisDate   time.Time      `json:"analysis_date"`
	FeatureCounts  map[string]int `json:"feature_counts"`
}

// Result is the complete output of a document analysis.
type Result struct {
	DocumentID      string           `json:"document_id,omitempty"`
	Summary         string           `json:"summary"`
	Risks           []Risk           `json:"risks"`
	Clauses         []Clause         `json:"clauses"`
	KeyTerms        []KeyTerm        `json:"key_terms"`
	ActionItems     []ActionItem     `json:"action_items"`
	FinancialImpact []FinancialItem  `json:"financial_impact"`
	Dates           []DateItem       `json:"dates"`
	Entities        []Entity         `json:"entities"`
	ComplianceItems []ComplianceItem `json:"compliance_items"`
	Recommendations []string         `json:"recommendations"`
	ConfidenceScore float64          `json:"confidence_score"`
	Metadata        Metadata         `json:"analysis_metadata"`
}
