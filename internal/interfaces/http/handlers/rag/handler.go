package rag

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/rag/usecases"
	"haitch/internal/infrastructure/storage"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

// Use case interfaces for KnowledgeHandler - enables unit testing with mocks.

type questionUseCases interface {
	Create(ctx context.Context, question, answer string) (*usecases.QuestionDetail, error)
	Update(ctx context.Context, id uint, question, answer string) (*usecases.QuestionDetail, error)
	Get(ctx context.Context, id uint) (*usecases.QuestionDetail, error)
	List(ctx context.Context, page, pageSize int) (*usecases.ListQuestionsResult, error)
	Delete(ctx context.Context, id uint) error
}

type documentUseCases interface {
	Upload(ctx context.Context, cmd usecases.UploadDocumentCommand) (*usecases.DocumentDetail, error)
	List(ctx context.Context, page, pageSize int) (*usecases.ListDocumentsResult, error)
	Delete(ctx context.Context, id uint) error
}

type QuestionRequest struct {
	Question string `json:"question" binding:"required,max=2000"`
	Answer   string `json:"answer" binding:"omitempty,max=10000"`
}

// fileStore persists uploaded documents before the remote ingest.
type fileStore interface {
	Save(header *multipart.FileHeader) (*storage.StoredFile, error)
	Open(path string) (*os.File, error)
}

// KnowledgeHandler manages the Q&A pairs and raw documents feeding the
// knowledge base.
type KnowledgeHandler struct {
	questions questionUseCases
	documents documentUseCases
	files     fileStore
	logger    logger.Interface
}

func NewKnowledgeHandler(questions questionUseCases, documents documentUseCases, files fileStore, log logger.Interface) *KnowledgeHandler {
	return &KnowledgeHandler{
		questions: questions,
		documents: documents,
		files:     files,
		logger:    log,
	}
}

// CreateQuestion handles POST /rag/questions
func (h *KnowledgeHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.questions.Create(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// UpdateQuestion handles PUT /rag/questions/:id
func (h *KnowledgeHandler) UpdateQuestion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.questions.Update(c.Request.Context(), id, req.Question, req.Answer)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetQuestion handles GET /rag/questions/:id
func (h *KnowledgeHandler) GetQuestion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.questions.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListQuestions handles GET /rag/questions
func (h *KnowledgeHandler) ListQuestions(c *gin.Context) {
	p := utils.GetPagination(c)

	result, err := h.questions.List(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Questions, result.Total, p.Page, p.PageSize)
}

// DeleteQuestion handles DELETE /rag/questions/:id
func (h *KnowledgeHandler) DeleteQuestion(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.questions.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "question deleted", nil)
}

// UploadDocument handles POST /rag/documents
func (h *KnowledgeHandler) UploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	stored, err := h.files.Save(header)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := h.files.Open(stored.Path)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read stored file"))
		return
	}
	content, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read stored file"))
		return
	}

	result, err := h.documents.Upload(c.Request.Context(), usecases.UploadDocumentCommand{
		Name:    stored.FileName,
		Path:    stored.Path,
		Size:    stored.Size,
		Content: content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// ListDocuments handles GET /rag/documents
func (h *KnowledgeHandler) ListDocuments(c *gin.Context) {
	p := utils.GetPagination(c)

	result, err := h.documents.List(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Documents, result.Total, p.Page, p.PageSize)
}

// DeleteDocument handles DELETE /rag/documents/:id
func (h *KnowledgeHandler) DeleteDocument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.documents.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "document deleted", nil)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid id")
	}
	return uint(id), nil
}
