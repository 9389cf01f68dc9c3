// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"strings"
	"testing"
)

func TestAppendTableSummaries_TabTable(t *testing.T) {
	text := "The lease includes the following charges.\n" +
		"Name\tAmount\n" +
		"Rent\t$1,500\n" +
		"Deposit\t$3,000\n"

	got := AppendTableSummaries(text)
	if !strings.Contains(got, TableSummaryMarker) {
		t.Fatal("expected the table summary marker")
	}
	if !strings.Contains(got, "Table with 2 rows and columns Name, Amount.") {
		t.Errorf("missing table sentence in %q", got)
	}
	if !strings.Contains(got, "Row: Name: Rent, Amount: $1,500.") {
		t.Errorf("missing first row in %q", got)
	}
	if !strings.Contains(got, "Row: Name: Deposit, Amount: $3,000.") {
		t.Errorf("missing second row in %q", got)
	}
	if !strings.HasPrefix(got, text) {
		t.Error("original text should be preserved ahead of the summaries")
	}
}

func TestAppendTableSummaries_PipeTable(t *testing.T) {
	text := "| Item | Cost |\n| Filing fee | $400 |"
	got := AppendTableSummaries(text)
	if !strings.Contains(got, "Table with 1 rows and columns Item, Cost.") {
		t.Errorf("pipe-delimited table not summarized: %q", got)
	}
}

func TestAppendTableSummaries_NoTables(t *testing.T) {
	text := "This agreement has no tabular content at all.\nJust prose paragraphs."
	if got := AppendTableSummaries(text); got != text {
		t.Errorf("text without tables should be unchanged, got %q", got)
	}
}

func TestAppendTableSummaries_SingleRowIgnored(t *testing.T) {
	text := "Intro line.\nName\tAmount\nA closing sentence without columns."
	if got := AppendTableSummaries(text); got != text {
		t.Errorf("a lone multi-column line is not a table, got %q", got)
	}
}

func TestAppendTableSummaries_MultipleTables(t *testing.T) {
	text := "Fees\tDue\nLate\t$50\n\nParty\tRole\nAcme\tLandlord\n"
	got := AppendTableSummaries(text)
	if n := strings.Count(got, "Table with"); n != 2 {
		t.Errorf("expected 2 table summaries, got %d in %q", n, got)
	}
}
