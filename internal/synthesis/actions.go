// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package synthesis turns extraction results into action items and
// prioritized recommendations.
package synthesis

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lexiscan/internal/analysis"
	"lexiscan/internal/catalog"
)

const (
	maxRiskActions       = 3
	maxDeadlinesPerGroup = 5
)

// ActionItems builds the follow-up task list for a document: the
// canned templates for its type, tasks for the top high risks, and
// deadlines extracted from the text. now anchors all deadlines.
func ActionItems(text, docType string, risks []analysis.Risk, now time.Time) []analysis.ActionItem {
	var items []analysis.ActionItem

	for _, t := range catalog.ActionTemplatesFor(docType) {
		items = append(items, analysis.ActionItem{
			ID:          t.ID,
			Task:        t.Task,
			Deadline:    now.AddDate(0, 0, t.DaysOffset),
			Priority:    t.Priority,
			Status:      "pending",
			Description: t.Description,
			Category:    t.Category,
		})
	}

	riskTemplate := catalog.RiskActionTemplateFor("high")
	count := 0
	for _, r := range risks {
		if r.Level != "high" || count >= maxRiskActions {
			continue
		}
		count++
		items = append(items, analysis.ActionItem{
			ID:          fmt.Sprintf("risk_%d", count),
			Task:        fmt.Sprintf("%s: %s", riskTemplate.TaskPrefix, r.Title),
			Deadline:    now.AddDate(0, 0, riskTemplate.DaysOffset),
			Priority:    riskTemplate.Priority,
			Status:      "pending",
			Description: fmt.Sprintf("%s: %s...", riskTemplate.DescriptionPrefix, analysis.Clip(r.Description, 100)),
			Category:    riskTemplate.Category,
		})
	}

	items = append(items, deadlineActions(text, now)...)
	return items
}

// deadlineActions extracts "within N days" style obligations, at most
// maxDeadlinesPerGroup per pattern.
func deadlineActions(text string, now time.Time) []analysis.ActionItem {
	var items []analysis.ActionItem
	for _, p := range catalog.DeadlinePatterns() {
		matches := p.Regex.FindAllStringSubmatchIndex(text, -1)
		for i, m := range matches {
			if i >= maxDeadlinesPerGroup {
				break
			}
			if m[2] < 0 || m[4] < 0 {
				continue
			}
			days, err := strconv.Atoi(text[m[2]:m[3]])
			if err != nil {
				continue
			}
			unit := strings.ToLower(text[m[4]:m[5]])
			days *= catalog.TimeMultiplier(unit)
			match := text[m[0]:m[1]]
			items = append(items, analysis.ActionItem{
				ID:          fmt.Sprintf("deadline_%s_%d", p.Category, i+1),
				Task:        fmt.Sprintf("Complete requirement: %s...", analysis.Clip(match, 50)),
				Deadline:    now.AddDate(0, 0, days),
				Priority:    p.Priority,
				Status:      "pending",
				Description: "Action item extracted from document: " + match,
				Category:    p.Category,
			})
		}
	}
	return items
}
