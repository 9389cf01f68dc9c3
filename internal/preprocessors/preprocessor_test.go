// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestManager_ProcessTextFile(t *testing.T) {
	text := "This agreement is made between the parties named below."
	path := writeTempFile(t, "agreement.txt", []byte(text))

	m := NewManager()
	content, err := m.ProcessFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Text != text {
		t.Errorf("unexpected text: %q", content.Text)
	}
	if content.ProcessorType != "plaintext" {
		t.Errorf("expected plaintext processor, got %q", content.ProcessorType)
	}
	if content.Format != "txt" {
		t.Errorf("expected format txt, got %q", content.Format)
	}
	if content.WordCount != len(strings.Fields(text)) {
		t.Errorf("unexpected word count %d", content.WordCount)
	}
	if content.CharCount != len(text) {
		t.Errorf("unexpected char count %d", content.CharCount)
	}
	if content.Filename != "agreement.txt" {
		t.Errorf("unexpected filename %q", content.Filename)
	}
}

func TestManager_AppendsTableSummaries(t *testing.T) {
	text := "Charges are listed below.\nName\tAmount\nRent\t$1,500\n"
	path := writeTempFile(t, "charges.txt", []byte(text))

	m := NewManager()
	content, err := m.ProcessFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content.Text, TableSummaryMarker) {
		t.Error("expected table summaries appended to the text")
	}
	if content.CharCount != len(content.Text) {
		t.Error("char count should reflect the augmented text")
	}
}

func TestManager_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "image.png", []byte("not a document"))

	m := NewManager()
	_, err := m.ProcessFile(path)
	if err == nil {
		t.Fatal("expected an error for an unsupported file type")
	}
	if !strings.Contains(err.Error(), "unsupported file type: .png") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPlainText_InvalidUTF8(t *testing.T) {
	path := writeTempFile(t, "binary.txt", []byte{0xff, 0xfe, 0x00, 0x80})

	p := NewPlainTextPreprocessor()
	if _, err := p.Process(path); err == nil {
		t.Error("expected an error for non-UTF-8 content")
	}
}

func TestPlainText_CanProcess(t *testing.T) {
	p := NewPlainTextPreprocessor()
	cases := []struct {
		path string
		want bool
	}{
		{"contract.txt", true},
		{"notes.MD", true},
		{"data.csv", true},
		{"scan.pdf", false},
		{"archive.zip", false},
	}
	for _, tc := range cases {
		if got := p.CanProcess(tc.path); got != tc.want {
			t.Errorf("CanProcess(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestPDF_CanProcess(t *testing.T) {
	p := NewPDFPreprocessor()
	if !p.CanProcess("lease.pdf") {
		t.Error("expected .pdf to be supported")
	}
	if p.CanProcess("lease.txt") {
		t.Error(".txt should not route to the PDF preprocessor")
	}
}
