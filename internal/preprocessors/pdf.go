// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"lexiscan/internal/observability"
)

// PDFPreprocessor extracts plain text from PDF files.
type PDFPreprocessor struct{}

// NewPDFPreprocessor creates a PDF preprocessor.
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{}
}

// Name returns the name of this preprocessor.
func (p *PDFPreprocessor) Name() string {
	return "PDF Preprocessor"
}

// SupportedExtensions returns the file extensions this preprocessor supports.
func (p *PDFPreprocessor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// CanProcess checks if this preprocessor handles the given file.
func (p *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".pdf")
}

// Process validates the PDF, then extracts text page by page.
func (p *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filePath, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds size limit (%d bytes)", filePath, info.Size())
	}

	if err := api.ValidateFile(filePath, nil); err != nil {
		return nil, fmt.Errorf("invalid PDF %s: %w", filePath, err)
	}
	pageCount, err := api.PageCountFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("page count of %s: %w", filePath, err)
	}

	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", filePath, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			observability.Log.WithField("page", i).WithError(err).Warn("skipping unreadable PDF page")
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", filePath)
	}

	return &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Text:          strings.Join(pages, "\n\n"),
		Format:        "pdf",
		PageCount:     pageCount,
		ProcessorType: "pdf",
	}, nil
}
