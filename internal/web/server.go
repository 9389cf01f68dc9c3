// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the analysis pipeline over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"lexiscan/internal/analyzer"
	"lexiscan/internal/config"
	"lexiscan/internal/observability"
	"lexiscan/internal/preprocessors"
	"lexiscan/internal/store"
	"lexiscan/internal/version"
)

const maxUploadSize = 50 << 20

// Server wires the analyzer, preprocessors, and document store into an
// HTTP API.
type Server struct {
	cfg      *config.Config
	analyzer *analyzer.Analyzer
	manager  *preprocessors.Manager
	store    *store.Store
	server   *http.Server
}

// NewServer creates a Server around the given analyzer and config.
func NewServer(cfg *config.Config, a *analyzer.Analyzer) *Server {
	s := &Server{
		cfg:      cfg,
		analyzer: a,
		manager:  preprocessors.NewManager(),
		store:    store.New(),
	}

	router := mux.NewRouter()
	router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)
	router.HandleFunc("/summarize", s.handleSummarize).Methods(http.MethodPost)
	router.HandleFunc("/documents/last", s.handleGetLast).Methods(http.MethodGet)
	router.HandleFunc("/documents/last", s.handleDeleteLast).Methods(http.MethodDelete)
	router.HandleFunc("/documents/{id}", s.handleGetDocument).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Use(logMiddleware)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	return s
}

// Start runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		observability.Log.WithField("addr", s.server.Addr).Info("starting web server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		observability.Log.Info("shutting down web server")
		return s.server.Shutdown(shutdownCtx)
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		observability.Log.WithFields(map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}

type analyzeRequest struct {
	Text         string `json:"text"`
	DocumentType string `json:"document_type,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("text is required"))
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), analyzer.Request{
		Text:         req.Text,
		DocumentType: req.DocumentType,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.store.Save(result)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	// Preprocessors work on paths, so spool the upload to a temp file.
	tmp, err := os.CreateTemp("", "lexiscan-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("spooling upload: %w", err))
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, io.LimitReader(file, maxUploadSize)); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, fmt.Errorf("spooling upload: %w", err))
		return
	}
	tmp.Close()

	content, err := s.manager.ProcessFile(tmp.Name())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("extracting text from %s: %w", header.Filename, err))
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), analyzer.Request{
		Text:         content.Text,
		DocumentType: r.FormValue("document_type"),
		Filename:     header.Filename,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.store.Save(result)
	writeJSON(w, http.StatusOK, result)
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length,omitempty"`
}

type summarizeResponse struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	summary, err := s.analyzer.Summarize(r.Context(), req.Text, req.MaxLength)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, summarizeResponse{
		Summary:        summary,
		OriginalLength: len(req.Text),
		SummaryLength:  len(summary),
	})
}

func (s *Server) handleGetLast(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.GetLast()
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteLast(w http.ResponseWriter, r *http.Request) {
	id, err := s.store.DeleteLast()
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"version":    version.Version,
		"summarizer": s.cfg.Summarizer.Provider,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.Log.WithError(err).Error("writing response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
