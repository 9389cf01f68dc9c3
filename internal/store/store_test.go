// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/analysis"
)

func TestSaveAndGet(t *testing.T) {
	s := New()
	result := &analysis.Result{Summary: "first"}

	id := s.Save(result)
	require.NotEmpty(t, id)
	assert.Equal(t, id, result.DocumentID)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Summary)
	assert.Equal(t, 1, s.Len())
}

func TestGet_NotFound(t *testing.T) {
	s := New()
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLast(t *testing.T) {
	s := New()
	_, err := s.GetLast()
	assert.ErrorIs(t, err, ErrNotFound)

	s.Save(&analysis.Result{Summary: "first"})
	s.Save(&analysis.Result{Summary: "second"})

	got, err := s.GetLast()
	require.NoError(t, err)
	assert.Equal(t, "second", got.Summary)
}

func TestDeleteLast(t *testing.T) {
	s := New()
	_, err := s.DeleteLast()
	assert.ErrorIs(t, err, ErrNotFound)

	id := s.Save(&analysis.Result{Summary: "only"})
	deleted, err := s.DeleteLast()
	require.NoError(t, err)
	assert.Equal(t, id, deleted)
	assert.Equal(t, 0, s.Len())

	// The last-document pointer is cleared after deletion.
	_, err = s.GetLast()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSave_UniqueIDs(t *testing.T) {
	s := New()
	a := s.Save(&analysis.Result{})
	b := s.Save(&analysis.Result{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, s.Len())
}
