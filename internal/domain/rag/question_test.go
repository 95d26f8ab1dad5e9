package rag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	q, err := NewQuestion("how to reset", "hold power 10s")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, q.Status())
	assert.Nil(t, q.UpdatedAt())
	assert.True(t, q.IsUploadable())

	_, err = NewQuestion("", "")
	assert.Error(t, err)
}

func TestQuestion_IsUploadable(t *testing.T) {
	q, err := NewQuestion("q", "")
	require.NoError(t, err)
	assert.False(t, q.IsUploadable(), "unanswered question must not upload")

	require.NoError(t, q.Update("q", "a"))
	assert.True(t, q.IsUploadable())

	q.MarkProcessed("file-1", time.Now())
	assert.False(t, q.IsUploadable())

	require.NoError(t, q.Update("q", "a2"))
	assert.True(t, q.IsUploadable(), "edit resets the row to pending")

	q.MarkDeleted()
	assert.False(t, q.IsUploadable())
}

func TestQuestion_MarkProcessed(t *testing.T) {
	q, err := NewQuestion("q", "a")
	require.NoError(t, err)

	at := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	q.MarkProcessed("doc-9", at)

	require.NotNil(t, q.FileID())
	assert.Equal(t, "doc-9", *q.FileID())
	assert.Equal(t, StatusProcessed, q.Status())
	require.NotNil(t, q.UpdatedAt())
	assert.Equal(t, at, *q.UpdatedAt())
}

func TestQuestion_KnowledgeText(t *testing.T) {
	q, err := NewQuestion("how to reset", "hold power 10s")
	require.NoError(t, err)

	text := q.KnowledgeText()
	assert.Contains(t, text, "how to reset")
	assert.Contains(t, text, "hold power 10s")
}

func TestNewDocument(t *testing.T) {
	d, err := NewDocument("manual.pdf", "/uploads/manual.pdf", 2048)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, d.Status())

	_, err = NewDocument("", "", 0)
	assert.Error(t, err)
}
