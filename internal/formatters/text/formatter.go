// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lexiscan/internal/analysis"
	"lexiscan/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"critical": color.New(color.FgRed, color.Bold),
			"high":     color.New(color.FgRed),
			"medium":   color.New(color.FgYellow),
			"low":      color.New(color.FgGreen),
			"header":   color.New(color.FgCyan, color.Bold),
			"label":    color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *analysis.Result, options formatters.FormatterOptions) (string, error) {
	if result == nil {
		return "No analysis result.", nil
	}
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	f.header(&b, "DOCUMENT ANALYSIS")
	fmt.Fprintf(&b, "Document type: %s\n", result.Metadata.DocumentType)
	fmt.Fprintf(&b, "Confidence:    %.2f\n", result.ConfidenceScore)
	fmt.Fprintf(&b, "Words:         %d\n\n", result.Metadata.WordCount)

	if result.Summary != "" {
		f.header(&b, "SUMMARY")
		b.WriteString(result.Summary)
		b.WriteString("\n\n")
	}

	risks := formatters.FilterRisks(result.Risks, options.ConfidenceThreshold)
	if len(risks) > 0 {
		f.header(&b, fmt.Sprintf("RISKS (%d)", len(risks)))
		for _, r := range risks {
			level := f.colorFor(r.Level).Sprintf("[%s]", strings.ToUpper(r.Level))
			fmt.Fprintf(&b, "%s %s (confidence %.1f)\n", level, r.Title, r.Confidence)
			if options.Verbose {
				fmt.Fprintf(&b, "    %s\n", r.Description)
				if r.Mitigation != "" {
					fmt.Fprintf(&b, "    Mitigation: %s\n", r.Mitigation)
				}
			}
		}
		b.WriteString("\n")
	}

	if len(result.Clauses) > 0 {
		f.header(&b, fmt.Sprintf("CLAUSES (%d)", len(result.Clauses)))
		for _, c := range result.Clauses {
			fmt.Fprintf(&b, "- %s [%s]\n", c.Title, c.Significance)
			if options.Verbose {
				fmt.Fprintf(&b, "    %s\n", c.Content)
			}
		}
		b.WriteString("\n")
	}

	if len(result.KeyTerms) > 0 {
		f.header(&b, fmt.Sprintf("KEY TERMS (%d)", len(result.KeyTerms)))
		for _, t := range result.KeyTerms {
			fmt.Fprintf(&b, "- %s: %s\n", f.colors["label"].Sprint(t.Term), t.Definition)
		}
		b.WriteString("\n")
	}

	if len(result.FinancialImpact) > 0 {
		f.header(&b, fmt.Sprintf("FINANCIAL ITEMS (%d)", len(result.FinancialImpact)))
		for _, item := range result.FinancialImpact {
			fmt.Fprintf(&b, "- %s: %.2f %s\n", item.Type, item.Amount, item.Currency)
		}
		b.WriteString("\n")
	}

	if len(result.Dates) > 0 {
		f.header(&b, fmt.Sprintf("DATES (%d)", len(result.Dates)))
		for _, d := range result.Dates {
			fmt.Fprintf(&b, "- %s: %s (%q)\n", d.Type, d.Date.Format("2006-01-02"), d.OriginalText)
		}
		b.WriteString("\n")
	}

	if len(result.Entities) > 0 && options.Verbose {
		f.header(&b, fmt.Sprintf("ENTITIES (%d)", len(result.Entities)))
		for _, e := range result.Entities {
			fmt.Fprintf(&b, "- %s: %s\n", e.Type, e.Text)
		}
		b.WriteString("\n")
	}

	if len(result.ActionItems) > 0 {
		f.header(&b, fmt.Sprintf("ACTION ITEMS (%d)", len(result.ActionItems)))
		for _, a := range result.ActionItems {
			fmt.Fprintf(&b, "- [%s] %s (due %s)\n", a.Priority, a.Task, a.Deadline.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		f.header(&b, "RECOMMENDATIONS")
		for _, r := range result.Recommendations {
			fmt.Fprintf(&b, "%s\n", r)
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (f *Formatter) header(b *strings.Builder, title string) {
	b.WriteString(f.colors["header"].Sprint(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n")
}

func (f *Formatter) colorFor(level string) *color.Color {
	if c, ok := f.colors[strings.ToLower(level)]; ok {
		return c
	}
	return f.colors["low"]
}
