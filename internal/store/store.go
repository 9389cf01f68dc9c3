// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package store keeps analysis results in memory keyed by document id.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"lexiscan/internal/analysis"
)

// ErrNotFound is returned when no document matches the request.
var ErrNotFound = errors.New("document not found")

// Store is a mutex-guarded in-memory document store.
type Store struct {
	mu      sync.RWMutex
	results map[string]*analysis.Result
	lastID  string
}

// New creates an empty Store.
func New() *Store {
	return &Store{results: make(map[string]*analysis.Result)}
}

// Save stores the result under a fresh id, records it as the most
// recent document, and returns the id.
func (s *Store) Save(result *analysis.Result) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	result.DocumentID = id
	s.results[id] = result
	s.lastID = id
	return id
}

// Get returns the result stored under id.
func (s *Store) Get(id string) (*analysis.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}

// GetLast returns the most recently saved result.
func (s *Store) GetLast() (*analysis.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastID == "" {
		return nil, ErrNotFound
	}
	return s.results[s.lastID], nil
}

// DeleteLast removes the most recently saved result and returns its id.
func (s *Store) DeleteLast() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastID == "" {
		return "", ErrNotFound
	}
	id := s.lastID
	delete(s.results, id)
	s.lastID = ""
	return id, nil
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
