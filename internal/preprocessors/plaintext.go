// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// PlainTextPreprocessor passes text files through unchanged.
type PlainTextPreprocessor struct{}

// NewPlainTextPreprocessor creates a plain text preprocessor.
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

// Name returns the name of this preprocessor.
func (p *PlainTextPreprocessor) Name() string {
	return "Plain Text Preprocessor"
}

// SupportedExtensions returns the file extensions this preprocessor supports.
func (p *PlainTextPreprocessor) SupportedExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown", ".rst", ".log", ".csv", ".tsv"}
}

// CanProcess checks if this preprocessor handles the given file.
func (p *PlainTextPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range p.SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Process reads the file and validates it holds text.
func (p *PlainTextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filePath, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds size limit (%d bytes)", filePath, info.Size())
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("file %s is not valid UTF-8 text", filePath)
	}

	return &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Text:          string(data),
		Format:        strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), "."),
		ProcessorType: "plaintext",
	}, nil
}
