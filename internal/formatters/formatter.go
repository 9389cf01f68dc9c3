// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"sort"
	"strings"

	"lexiscan/internal/analysis"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	ConfidenceThreshold float64 // Findings below this confidence are hidden
	Verbose             bool    // Whether to display detailed information
	NoColor             bool    // Whether to disable colored output
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders an analysis result in the formatter's output format
	Format(result *analysis.Result, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[strings.ToLower(name)]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateFormat returns an error naming the valid formats when the
// requested one is unknown.
func (r *Registry) ValidateFormat(name string) error {
	if _, ok := r.Get(name); !ok {
		return fmt.Errorf("unknown output format %q (valid formats: %s)", name, strings.Join(r.List(), ", "))
	}
	return nil
}

// FilterRisks drops risks below the confidence threshold.
func FilterRisks(risks []analysis.Risk, threshold float64) []analysis.Risk {
	if threshold <= 0 {
		return risks
	}
	var filtered []analysis.Risk
	for _, r := range risks {
		if r.Confidence >= threshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
