// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package synthesis

import (
	"fmt"
	"sort"
	"strings"

	"lexiscan/internal/analysis"
	"lexiscan/internal/catalog"
)

// Recommendations builds the prioritized recommendation list from risk
// counts, detected clause types, the document type, and financial
// findings. Output is sorted by priority with duplicates removed.
func Recommendations(docType string, risks []analysis.Risk, clauses []analysis.Clause, financial []analysis.FinancialItem) []string {
	var recs []string
	recs = append(recs, riskRecommendations(risks)...)
	recs = append(recs, clauseRecommendations(clauses)...)
	recs = append(recs, catalog.DocumentTypeRecommendations[strings.ToLower(docType)]...)
	recs = append(recs, financialRecommendations(financial)...)
	recs = append(recs, catalog.GeneralRecommendations...)
	recs = sortByPriority(recs)
	return uniqueInOrder(recs)
}

func riskRecommendations(risks []analysis.Risk) []string {
	counts := make(map[string]int)
	for _, r := range risks {
		counts[strings.ToLower(r.Level)]++
	}
	var recs []string
	for _, rr := range catalog.RiskRecommendations {
		count := counts[rr.Level]
		if count < rr.MinCount {
			continue
		}
		plural := ""
		if count > 1 {
			plural = "s"
		}
		recs = append(recs, fmt.Sprintf(rr.Template, count, plural))
	}
	return recs
}

func clauseRecommendations(clauses []analysis.Clause) []string {
	seen := make(map[string]struct{})
	var recs []string
	for _, c := range clauses {
		clauseType := strings.ToLower(c.Type)
		if _, done := seen[clauseType]; done {
			continue
		}
		seen[clauseType] = struct{}{}
		if rec, ok := catalog.ClauseRecommendations[clauseType]; ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

func financialRecommendations(items []analysis.FinancialItem) []string {
	if len(items) == 0 {
		return nil
	}
	var recs []string

	total := 0.0
	for _, item := range items {
		total += item.Amount
	}
	if total >= catalog.HighAmountThreshold {
		recs = append(recs, fmt.Sprintf(catalog.HighAmountTemplate, formatAmount(total)))
	}
	if len(items) >= catalog.MultipleAmountsMin {
		recs = append(recs, catalog.MultipleAmountsTemplate)
	}
	for _, item := range items {
		desc := strings.ToLower(item.Description)
		matched := false
		for _, kw := range catalog.PaymentScheduleKeywords {
			if strings.Contains(desc, kw) {
				recs = append(recs, catalog.PaymentScheduleTemplate)
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	return recs
}

// formatAmount renders 85000 as "85,000.00".
func formatAmount(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]
	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// sortByPriority orders recommendations by their leading emoji per the
// priority table; unknown prefixes keep relative order at the end.
func sortByPriority(recs []string) []string {
	score := func(rec string) int {
		for i, emoji := range catalog.RecommendationPriorityOrder {
			if strings.HasPrefix(rec, emoji) {
				return i
			}
		}
		return len(catalog.RecommendationPriorityOrder)
	}
	sorted := make([]string, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool { return score(sorted[i]) < score(sorted[j]) })
	return sorted
}

func uniqueInOrder(recs []string) []string {
	seen := make(map[string]struct{}, len(recs))
	out := recs[:0]
	for _, r := range recs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
