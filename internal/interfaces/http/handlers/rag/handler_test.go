package rag

import (
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/application/rag/usecases"
	"haitch/internal/infrastructure/storage"
	"haitch/internal/interfaces/http/handlers/testutil"
	"haitch/internal/shared/errors"
)

type mockQuestionUCs struct {
	detail *usecases.QuestionDetail
	list   *usecases.ListQuestionsResult
	err    error

	updatedID uint
}

func (m *mockQuestionUCs) Create(_ context.Context, _, _ string) (*usecases.QuestionDetail, error) {
	return m.detail, m.err
}

func (m *mockQuestionUCs) Update(_ context.Context, id uint, _, _ string) (*usecases.QuestionDetail, error) {
	m.updatedID = id
	return m.detail, m.err
}

func (m *mockQuestionUCs) Get(_ context.Context, _ uint) (*usecases.QuestionDetail, error) {
	return m.detail, m.err
}

func (m *mockQuestionUCs) List(_ context.Context, _, _ int) (*usecases.ListQuestionsResult, error) {
	return m.list, m.err
}

func (m *mockQuestionUCs) Delete(_ context.Context, _ uint) error {
	return m.err
}

type mockDocumentUCs struct {
	detail *usecases.DocumentDetail
	list   *usecases.ListDocumentsResult
	err    error
	cmd    usecases.UploadDocumentCommand
}

func (m *mockDocumentUCs) Upload(_ context.Context, cmd usecases.UploadDocumentCommand) (*usecases.DocumentDetail, error) {
	m.cmd = cmd
	return m.detail, m.err
}

func (m *mockDocumentUCs) List(_ context.Context, _, _ int) (*usecases.ListDocumentsResult, error) {
	return m.list, m.err
}

func (m *mockDocumentUCs) Delete(_ context.Context, _ uint) error {
	return m.err
}

// diskFileStore writes to a temp dir so UploadDocument can read back what it
// saved.
type diskFileStore struct {
	dir string
}

func (s *diskFileStore) Save(header *multipart.FileHeader) (*storage.StoredFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	path := filepath.Join(s.dir, header.Filename)
	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()
	if _, err := dst.ReadFrom(src); err != nil {
		return nil, err
	}

	return &storage.StoredFile{
		FileName:   header.Filename,
		StoredName: header.Filename,
		Path:       path,
		Size:       header.Size,
		MimeType:   "text/plain",
	}, nil
}

func (s *diskFileStore) Open(path string) (*os.File, error) {
	return os.Open(path)
}

func newTestHandler(t *testing.T, questions *mockQuestionUCs, documents *mockDocumentUCs) *KnowledgeHandler {
	t.Helper()
	if questions == nil {
		questions = &mockQuestionUCs{}
	}
	if documents == nil {
		documents = &mockDocumentUCs{}
	}
	return NewKnowledgeHandler(questions, documents, &diskFileStore{dir: t.TempDir()}, testutil.NewMockLogger())
}

func TestKnowledgeHandler_CreateQuestion(t *testing.T) {
	questions := &mockQuestionUCs{detail: &usecases.QuestionDetail{ID: 1, Question: "How to reset?"}}
	handler := newTestHandler(t, questions, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/rag/questions", QuestionRequest{Question: "How to reset?", Answer: "Hold the button."})
	testutil.SetAuthContext(c, 1, "admin")

	handler.CreateQuestion(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestKnowledgeHandler_UpdateQuestion_PassesID(t *testing.T) {
	questions := &mockQuestionUCs{detail: &usecases.QuestionDetail{ID: 6}}
	handler := newTestHandler(t, questions, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/rag/questions/6", QuestionRequest{Question: "Updated?"})
	testutil.SetAuthContext(c, 1, "admin")
	testutil.SetURLParam(c, "id", "6")

	handler.UpdateQuestion(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(6), questions.updatedID)
}

func TestKnowledgeHandler_GetQuestion_NotFound(t *testing.T) {
	questions := &mockQuestionUCs{err: errors.NewNotFoundError("question not found")}
	handler := newTestHandler(t, questions, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/rag/questions/9", nil)
	testutil.SetAuthContext(c, 1, "admin")
	testutil.SetURLParam(c, "id", "9")

	handler.GetQuestion(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKnowledgeHandler_UploadDocument(t *testing.T) {
	documents := &mockDocumentUCs{detail: &usecases.DocumentDetail{ID: 2, Name: "manual.txt"}}
	handler := newTestHandler(t, nil, documents)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/rag/documents", nil, []testutil.MultipartFile{
		{Field: "file", FileName: "manual.txt", Content: []byte("printer manual text")},
	})
	testutil.SetAuthContext(c, 1, "admin")

	handler.UploadDocument(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "manual.txt", documents.cmd.Name)
	assert.Equal(t, []byte("printer manual text"), documents.cmd.Content)
}

func TestKnowledgeHandler_UploadDocument_MissingFile(t *testing.T) {
	handler := newTestHandler(t, nil, nil)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/rag/documents", map[string]string{"name": "x"}, nil)
	testutil.SetAuthContext(c, 1, "admin")

	handler.UploadDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
