package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/rag"
)

func TestQuestionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db, testLogger())
	ctx := context.Background()

	q, err := rag.NewQuestion("how to reset", "hold power 10s")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, q))
	assert.NotZero(t, q.ID())

	found, err := repo.GetByID(ctx, q.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "how to reset", found.Question())
}

func TestQuestionRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db, testLogger())
	ctx := context.Background()

	q, err := rag.NewQuestion("q", "a")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, q))

	require.NoError(t, repo.Delete(ctx, q.ID()))

	// Soft-deleted rows are invisible to default reads.
	found, err := repo.GetByID(ctx, q.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	_, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	// Double delete reports not found.
	assert.Error(t, repo.Delete(ctx, q.ID()))
}

func TestQuestionRepository_ListUploadable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db, testLogger())
	ctx := context.Background()

	answered, err := rag.NewQuestion("answered", "yes")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, answered))

	unanswered, err := rag.NewQuestion("unanswered", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, unanswered))

	processed, err := rag.NewQuestion("processed", "done")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, processed))
	processed.MarkProcessed("file-1", time.Now())
	require.NoError(t, repo.Update(ctx, processed))

	deleted, err := rag.NewQuestion("deleted", "gone")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, deleted))
	require.NoError(t, repo.Delete(ctx, deleted.ID()))

	uploadable, err := repo.ListUploadable(ctx, 10)
	require.NoError(t, err)
	require.Len(t, uploadable, 1)
	assert.Equal(t, "answered", uploadable[0].Question())
}

func TestQuestionRepository_UpdateResetsStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db, testLogger())
	ctx := context.Background()

	q, err := rag.NewQuestion("q", "a")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, q))

	q.MarkProcessed("file-1", time.Now())
	require.NoError(t, repo.Update(ctx, q))

	require.NoError(t, q.Update("q", "better answer"))
	require.NoError(t, repo.Update(ctx, q))

	uploadable, err := repo.ListUploadable(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, uploadable, 1)
}
