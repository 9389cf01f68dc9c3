// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"regexp"
	"strings"
)

// TableSummaryMarker separates the document body from appended table
// summaries; extractors see tabular content as prose below it.
const TableSummaryMarker = "--- TABLE SUMMARIES ---"

var columnSplit = regexp.MustCompile(`\t|\s{2,}|\s*\|\s*`)

// AppendTableSummaries detects tabular line runs in text and appends a
// prose rendering of each under TableSummaryMarker. Text without
// tables is returned unchanged.
func AppendTableSummaries(text string) string {
	summaries := summarizeTables(text)
	if len(summaries) == 0 {
		return text
	}
	return text + "\n\n" + TableSummaryMarker + "\n" + strings.Join(summaries, "\n")
}

// summarizeTables finds runs of two or more consecutive lines sharing
// a multi-column shape and renders each as a sentence.
func summarizeTables(text string) []string {
	lines := strings.Split(text, "\n")
	var summaries []string
	var run [][]string
	flush := func() {
		if len(run) >= 2 {
			summaries = append(summaries, renderTable(run))
		}
		run = nil
	}
	for _, line := range lines {
		cells := splitColumns(line)
		if len(cells) >= 2 {
			run = append(run, cells)
			continue
		}
		flush()
	}
	flush()
	return summaries
}

func splitColumns(line string) []string {
	trimmed := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "|"))
	if trimmed == "" {
		return nil
	}
	var cells []string
	for _, cell := range columnSplit.Split(trimmed, -1) {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// renderTable writes one table as prose: the header row names the
// columns, each following row pairs values with them.
func renderTable(rows [][]string) string {
	header := rows[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Table with %d rows and columns %s.", len(rows)-1, strings.Join(header, ", "))
	for _, row := range rows[1:] {
		var pairs []string
		for i, cell := range row {
			if i < len(header) {
				pairs = append(pairs, header[i]+": "+cell)
			} else {
				pairs = append(pairs, cell)
			}
		}
		b.WriteString(" Row: " + strings.Join(pairs, ", ") + ".")
	}
	return b.String()
}
