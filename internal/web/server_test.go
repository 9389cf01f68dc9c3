// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/analysis"
	"lexiscan/internal/analyzer"
	"lexiscan/internal/config"
)

const sampleText = "This Employment Agreement sets the annual salary at $85,000.00. " +
	"Employment is at-will and may be terminated without cause. " +
	"The employee must respond within 10 days to any written notice."

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return NewServer(cfg, analyzer.New(nil))
}

func do(s *Server, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)
	return rec
}

func analyzeBody(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)
	return body
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodPost, "/analyze", "application/json", analyzeBody(t, sampleText))
	require.Equal(t, http.StatusOK, rec.Code)

	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.DocumentID)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Risks)
	assert.Equal(t, "employment", result.Metadata.DocumentType)
}

func TestHandleAnalyze_BadJSON(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodPost, "/analyze", "application/json", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestHandleAnalyze_EmptyText(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodPost, "/analyze", "application/json", analyzeBody(t, "   "))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "text is required")
}

func TestHandleUpload(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "contract.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleText))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("document_type", "employment"))
	require.NoError(t, w.Close())

	rec := do(s, http.MethodPost, "/upload", w.FormDataContentType(), buf.Bytes())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "employment", result.Metadata.DocumentType)
	assert.NotEmpty(t, result.DocumentID)
}

func TestHandleUpload_UnsupportedFile(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "scan.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := do(s, http.MethodPost, "/upload", w.FormDataContentType(), buf.Bytes())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "scan.png")
}

func TestHandleSummarize(t *testing.T) {
	s := newTestServer(t)
	body, err := json.Marshal(map[string]interface{}{"text": sampleText, "max_length": 200})
	require.NoError(t, err)

	rec := do(s, http.MethodPost, "/summarize", "application/json", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Summary)
	assert.Equal(t, len(sampleText), resp.OriginalLength)
	assert.Equal(t, len(resp.Summary), resp.SummaryLength)
}

func TestHandleSummarize_EmptyText(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodPost, "/summarize", "application/json", analyzeBody(t, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentLifecycle(t *testing.T) {
	s := newTestServer(t)

	// Nothing stored yet.
	rec := do(s, http.MethodGet, "/documents/last", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(s, http.MethodPost, "/analyze", "application/json", analyzeBody(t, sampleText))
	require.Equal(t, http.StatusOK, rec.Code)
	var result analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	rec = do(s, http.MethodGet, "/documents/last", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var last analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
	assert.Equal(t, result.DocumentID, last.DocumentID)

	rec = do(s, http.MethodGet, fmt.Sprintf("/documents/%s", result.DocumentID), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodDelete, "/documents/last", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.Equal(t, result.DocumentID, deleted["deleted"])

	rec = do(s, http.MethodGet, "/documents/last", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetDocument_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/documents/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(s, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "extractive", health["summarizer"])
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
}
