// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(result *analysis.Result, options formatters.FormatterOptions) (string, error) {
	if result == nil {
		return "{}", nil
	}
	filtered := *result
	filtered.Risks = formatters.FilterRisks(result.Risks, options.ConfidenceThreshold)

	data, err := json.MarshalIndent(&filtered, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling result to JSON: %w", err)
	}
	return string(data), nil
}
