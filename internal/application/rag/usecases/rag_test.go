package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"haitch/internal/domain/rag"
	"haitch/internal/shared/db"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type mockQuestionRepo struct {
	GetByIDFunc        func(ctx context.Context, id uint) (*rag.Question, error)
	ListUploadableFunc func(ctx context.Context, limit int) ([]*rag.Question, error)
	UpdateFunc         func(ctx context.Context, q *rag.Question) error

	created []*rag.Question
	updated []*rag.Question
	deleted []uint
}

func (m *mockQuestionRepo) Create(_ context.Context, q *rag.Question) error {
	if err := q.SetID(uint(len(m.created) + 1)); err != nil {
		return err
	}
	m.created = append(m.created, q)
	return nil
}

func (m *mockQuestionRepo) GetByID(ctx context.Context, id uint) (*rag.Question, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockQuestionRepo) Update(ctx context.Context, q *rag.Question) error {
	m.updated = append(m.updated, q)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, q)
	}
	return nil
}

func (m *mockQuestionRepo) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockQuestionRepo) List(_ context.Context, _, _ int) ([]*rag.Question, int64, error) {
	return m.created, int64(len(m.created)), nil
}

func (m *mockQuestionRepo) ListUploadable(ctx context.Context, limit int) ([]*rag.Question, error) {
	if m.ListUploadableFunc != nil {
		return m.ListUploadableFunc(ctx, limit)
	}
	return nil, nil
}

type mockKnowledge struct {
	UploadDocumentFunc func(ctx context.Context, fileName string, content []byte) (string, error)

	uploads []string
	deletes []string
}

func (m *mockKnowledge) UploadDocument(ctx context.Context, fileName string, content []byte) (string, error) {
	m.uploads = append(m.uploads, fileName)
	if m.UploadDocumentFunc != nil {
		return m.UploadDocumentFunc(ctx, fileName, content)
	}
	return "file-1", nil
}

func (m *mockKnowledge) DeleteDocument(_ context.Context, fileID string) error {
	m.deletes = append(m.deletes, fileID)
	return nil
}

func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func testNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func pendingQuestion(t *testing.T, id uint, question, answer string) *rag.Question {
	t.Helper()
	q, err := rag.NewQuestion(question, answer)
	require.NoError(t, err)
	require.NoError(t, q.SetID(id))
	return q
}

func TestQuestionUpdate_ResetsStatus(t *testing.T) {
	fileID := "file-9"
	processed, err := rag.ReconstructQuestion(5, "Q", "A", rag.StatusProcessed, false, &fileID, testNow(), nil)
	require.NoError(t, err)

	repo := &mockQuestionRepo{
		GetByIDFunc: func(_ context.Context, _ uint) (*rag.Question, error) { return processed, nil },
	}
	uc := NewQuestionUseCases(repo, &mockKnowledge{}, logger.NewLogger())

	detail, err := uc.Update(context.Background(), 5, "Q2", "A2")
	require.NoError(t, err)
	assert.Equal(t, rag.StatusPending, detail.Status)
	assert.NotNil(t, detail.UpdatedAt)
}

func TestQuestionDelete_RemovesRemoteDocument(t *testing.T) {
	fileID := "file-9"
	processed, err := rag.ReconstructQuestion(5, "Q", "A", rag.StatusProcessed, false, &fileID, testNow(), nil)
	require.NoError(t, err)

	repo := &mockQuestionRepo{
		GetByIDFunc: func(_ context.Context, _ uint) (*rag.Question, error) { return processed, nil },
	}
	knowledge := &mockKnowledge{}
	uc := NewQuestionUseCases(repo, knowledge, logger.NewLogger())

	require.NoError(t, uc.Delete(context.Background(), 5))
	assert.Equal(t, []uint{5}, repo.deleted)
	assert.Equal(t, []string{"file-9"}, knowledge.deletes)
}

func TestQuestionDelete_NotFound(t *testing.T) {
	uc := NewQuestionUseCases(&mockQuestionRepo{}, &mockKnowledge{}, logger.NewLogger())

	err := uc.Delete(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUploadPendingQuestions_MarksProcessed(t *testing.T) {
	first := pendingQuestion(t, 1, "Q1", "A1")
	second := pendingQuestion(t, 2, "Q2", "A2")

	repo := &mockQuestionRepo{
		ListUploadableFunc: func(_ context.Context, _ int) ([]*rag.Question, error) {
			return []*rag.Question{first, second}, nil
		},
	}
	knowledge := &mockKnowledge{}

	uc := NewUploadPendingQuestionsUseCase(repo, knowledge, testTxManager(t), 5, logger.NewLogger())

	processed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Equal(t, []string{"question_1.txt", "question_2.txt"}, knowledge.uploads)

	require.Len(t, repo.updated, 2)
	assert.Equal(t, rag.StatusProcessed, first.Status())
	assert.NotNil(t, first.UpdatedAt())
	assert.NotNil(t, first.FileID())
}

func TestUploadPendingQuestions_SkipsFailedRows(t *testing.T) {
	first := pendingQuestion(t, 1, "Q1", "A1")
	second := pendingQuestion(t, 2, "Q2", "A2")

	repo := &mockQuestionRepo{
		ListUploadableFunc: func(_ context.Context, _ int) ([]*rag.Question, error) {
			return []*rag.Question{first, second}, nil
		},
	}
	knowledge := &mockKnowledge{
		UploadDocumentFunc: func(_ context.Context, fileName string, _ []byte) (string, error) {
			if fileName == "question_1.txt" {
				return "", assert.AnError
			}
			return "file-2", nil
		},
	}

	uc := NewUploadPendingQuestionsUseCase(repo, knowledge, testTxManager(t), 5, logger.NewLogger())

	processed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, rag.StatusPending, first.Status())
	assert.Equal(t, rag.StatusProcessed, second.Status())
}

func TestUploadPendingQuestions_BatchRollbackOnDBError(t *testing.T) {
	first := pendingQuestion(t, 1, "Q1", "A1")

	repo := &mockQuestionRepo{
		ListUploadableFunc: func(_ context.Context, _ int) ([]*rag.Question, error) {
			return []*rag.Question{first}, nil
		},
		UpdateFunc: func(_ context.Context, _ *rag.Question) error {
			return assert.AnError
		},
	}

	uc := NewUploadPendingQuestionsUseCase(repo, &mockKnowledge{}, testTxManager(t), 5, logger.NewLogger())

	processed, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, processed)
}
