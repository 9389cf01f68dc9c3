// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns input files into analyzable plain text.
package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize caps input file size at 50 MB.
const MaxFileSize = 50 << 20

// ProcessedContent is the text extracted from an input file.
type ProcessedContent struct {
	OriginalPath string
	Filename     string

	Text string

	Format    string
	PageCount int
	WordCount int
	CharCount int

	ProcessorType string
}

// Preprocessor extracts text from one class of input files.
type Preprocessor interface {
	// CanProcess checks if this preprocessor handles the given file.
	CanProcess(filePath string) bool

	// Process extracts content from the file.
	Process(filePath string) (*ProcessedContent, error)

	// Name returns the name of this preprocessor.
	Name() string

	// SupportedExtensions returns the file extensions this preprocessor supports.
	SupportedExtensions() []string
}

// Manager routes files to registered preprocessors.
type Manager struct {
	preprocessors []Preprocessor
}

// NewManager creates a Manager with the default preprocessors.
func NewManager() *Manager {
	m := &Manager{}
	m.Register(NewPDFPreprocessor())
	m.Register(NewPlainTextPreprocessor())
	return m
}

// Register adds a preprocessor to the manager.
func (m *Manager) Register(p Preprocessor) {
	m.preprocessors = append(m.preprocessors, p)
}

// ProcessFile extracts text from filePath with the first preprocessor
// that succeeds, then appends table summaries to the text.
func (m *Manager) ProcessFile(filePath string) (*ProcessedContent, error) {
	var lastErr error
	for _, p := range m.preprocessors {
		if !p.CanProcess(filePath) {
			continue
		}
		content, err := p.Process(filePath)
		if err != nil {
			lastErr = err
			continue
		}
		content.Text = AppendTableSummaries(content.Text)
		content.WordCount = len(strings.Fields(content.Text))
		content.CharCount = len(content.Text)
		return content, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filePath))
}
