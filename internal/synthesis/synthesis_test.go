// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package synthesis

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/analysis"
)

var testNow = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

func TestActionItems_DocumentTemplates(t *testing.T) {
	items := ActionItems("", "employment", nil, testNow)
	require.Len(t, items, 4)
	assert.Equal(t, "emp_1", items[0].ID)
	assert.Equal(t, "Review and sign employment contract", items[0].Task)
	assert.Equal(t, testNow.AddDate(0, 0, 7), items[0].Deadline)
	assert.Equal(t, "pending", items[0].Status)

	for _, item := range items {
		assert.False(t, item.Deadline.Before(testNow), "deadline %s is before the anchor", item.ID)
	}
}

func TestActionItems_UnknownTypeFallsBack(t *testing.T) {
	items := ActionItems("", "mystery", nil, testNow)
	require.NotEmpty(t, items)
	assert.Equal(t, "general_1", items[0].ID)
}

func TestActionItems_HighRisksCapped(t *testing.T) {
	var risks []analysis.Risk
	for i := 0; i < 5; i++ {
		risks = append(risks, analysis.Risk{
			Level:       "high",
			Title:       fmt.Sprintf("Risk %d", i+1),
			Description: "A lengthy description of the finding.",
		})
	}
	risks = append(risks, analysis.Risk{Level: "low", Title: "Minor"})

	items := ActionItems("", "mystery", risks, testNow)
	var riskItems []analysis.ActionItem
	for _, item := range items {
		if strings.HasPrefix(item.ID, "risk_") {
			riskItems = append(riskItems, item)
		}
	}
	require.Len(t, riskItems, 3)
	assert.Equal(t, "risk_1", riskItems[0].ID)
	assert.Equal(t, "Address high-risk item: Risk 1", riskItems[0].Task)
	assert.Equal(t, testNow.AddDate(0, 0, 5), riskItems[0].Deadline)
	assert.Equal(t, "high", riskItems[0].Priority)
	assert.True(t, strings.HasPrefix(riskItems[0].Description, "Review and mitigate: "))
}

func TestActionItems_DeadlineExtraction(t *testing.T) {
	text := "The tenant must respond within 30 days of receiving this notice."
	items := ActionItems(text, "mystery", nil, testNow)

	var deadline *analysis.ActionItem
	for i := range items {
		if items[i].ID == "deadline_compliance_1" {
			deadline = &items[i]
		}
	}
	require.NotNil(t, deadline, "expected a compliance deadline item")
	assert.Equal(t, testNow.AddDate(0, 0, 30), deadline.Deadline)
	assert.Equal(t, "high", deadline.Priority)
	assert.True(t, strings.HasPrefix(deadline.Task, "Complete requirement: "))
}

func TestActionItems_DeadlineUnitsConverted(t *testing.T) {
	text := "All documents shall be delivered within 2 weeks after signing."
	items := ActionItems(text, "mystery", nil, testNow)
	found := false
	for _, item := range items {
		if strings.HasPrefix(item.ID, "deadline_") {
			found = true
			assert.Equal(t, testNow.AddDate(0, 0, 14), item.Deadline)
		}
	}
	assert.True(t, found, "expected a deadline item for the week-based obligation")
}

func TestRecommendations_PrioritySort(t *testing.T) {
	risks := []analysis.Risk{
		{Level: "high", Title: "One"},
		{Level: "high", Title: "Two"},
	}
	clauses := []analysis.Clause{{Type: "non_compete"}}
	financial := []analysis.FinancialItem{{Amount: 85000, Currency: "USD"}}

	recs := Recommendations("mystery", risks, clauses, financial)
	require.GreaterOrEqual(t, len(recs), 3)

	assert.Equal(t, "⚠️ 2 high-risk items identified. Consider consulting with a legal professional.", recs[0])
	assert.True(t, strings.HasPrefix(recs[1], "💰"), "expected financial recommendation second, got %q", recs[1])
	assert.Contains(t, recs[1], "$85,000.00")
	assert.True(t, strings.HasPrefix(recs[2], "🚫"), "expected non-compete recommendation third, got %q", recs[2])
}

func TestRecommendations_SingularRiskCount(t *testing.T) {
	recs := Recommendations("mystery", []analysis.Risk{{Level: "high"}}, nil, nil)
	require.NotEmpty(t, recs)
	assert.Equal(t, "⚠️ 1 high-risk item identified. Consider consulting with a legal professional.", recs[0])
}

func TestRecommendations_MediumThreshold(t *testing.T) {
	three := []analysis.Risk{{Level: "medium"}, {Level: "medium"}, {Level: "medium"}}
	for _, rec := range Recommendations("mystery", three, nil, nil) {
		assert.NotContains(t, rec, "medium-risk")
	}

	four := append(three, analysis.Risk{Level: "medium"})
	found := false
	for _, rec := range Recommendations("mystery", four, nil, nil) {
		if strings.Contains(rec, "4 medium-risk items") {
			found = true
		}
	}
	assert.True(t, found, "expected the medium-risk recommendation at four findings")
}

func TestRecommendations_ClauseTypeOnce(t *testing.T) {
	clauses := []analysis.Clause{{Type: "non_compete"}, {Type: "non_compete"}}
	count := 0
	for _, rec := range Recommendations("mystery", nil, clauses, nil) {
		if strings.HasPrefix(rec, "🚫") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecommendations_PaymentSchedule(t *testing.T) {
	financial := []analysis.FinancialItem{{Amount: 100, Currency: "USD", Description: "Monthly payment: $100"}}
	found := false
	for _, rec := range Recommendations("mystery", nil, nil, financial) {
		if strings.Contains(rec, "Payment schedule detected") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRecommendations_DocumentType(t *testing.T) {
	recs := Recommendations("employment", nil, nil, nil)
	found := false
	for _, rec := range recs {
		if strings.Contains(rec, "compensation details") {
			found = true
		}
	}
	assert.True(t, found, "expected employment-specific recommendations")
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{85000, "85,000.00"},
		{1234567.5, "1,234,567.50"},
		{999, "999.00"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatAmount(tc.in), "formatAmount(%v)", tc.in)
	}
}
