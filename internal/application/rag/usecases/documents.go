package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/rag"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type DocumentDetail struct {
	ID        uint
	Name      string
	Size      int64
	Status    int
	FileID    *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type ListDocumentsResult struct {
	Documents []*DocumentDetail
	Total     int64
}

type UploadDocumentCommand struct {
	Name    string
	Path    string
	Size    int64
	Content []byte
}

// DocumentUseCases manages raw knowledge-base documents.
type DocumentUseCases struct {
	repo      rag.DocumentRepository
	knowledge KnowledgeStore
	files     FileRemover
	logger    logger.Interface
}

func NewDocumentUseCases(
	repo rag.DocumentRepository,
	knowledge KnowledgeStore,
	files FileRemover,
	logger logger.Interface,
) *DocumentUseCases {
	return &DocumentUseCases{repo: repo, knowledge: knowledge, files: files, logger: logger}
}

// Upload records the document and pushes it through the knowledge-base
// pipeline. A failed remote upload leaves the row pending so it can be
// retried.
func (uc *DocumentUseCases) Upload(ctx context.Context, cmd UploadDocumentCommand) (*DocumentDetail, error) {
	d, err := rag.NewDocument(cmd.Name, cmd.Path, cmd.Size)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to create document", "name", cmd.Name, "error", err)
		return nil, err
	}

	fileID, err := uc.knowledge.UploadDocument(ctx, cmd.Name, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to upload document to knowledge base", "document_id", d.ID(), "error", err)
		return toDocumentDetail(d), nil
	}

	d.MarkProcessed(fileID, time.Now())
	if err := uc.repo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to record knowledge file id", "document_id", d.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("document uploaded", "document_id", d.ID(), "file_id", fileID)
	return toDocumentDetail(d), nil
}

func (uc *DocumentUseCases) List(ctx context.Context, page, pageSize int) (*ListDocumentsResult, error) {
	page, pageSize = utils.NormalizePagination(page, pageSize)

	documents, total, err := uc.repo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list documents", "error", err)
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	details := make([]*DocumentDetail, 0, len(documents))
	for _, d := range documents {
		details = append(details, toDocumentDetail(d))
	}
	return &ListDocumentsResult{Documents: details, Total: total}, nil
}

// Delete soft-deletes the row, removes the file from disk and deletes the
// remote document when one exists. Remote failures are logged, not rolled
// back.
func (uc *DocumentUseCases) Delete(ctx context.Context, id uint) error {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if d == nil {
		return errors.NewNotFoundError("document not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete document", "document_id", id, "error", err)
		return err
	}

	if err := uc.files.Remove(d.Path()); err != nil {
		uc.logger.Warnw("failed to remove document file", "path", d.Path(), "error", err)
	}

	if fileID := d.FileID(); fileID != nil {
		if err := uc.knowledge.DeleteDocument(ctx, *fileID); err != nil {
			uc.logger.Warnw("failed to delete knowledge document", "document_id", id, "file_id", *fileID, "error", err)
		}
	}

	uc.logger.Infow("document deleted", "document_id", id)
	return nil
}

func toDocumentDetail(d *rag.Document) *DocumentDetail {
	return &DocumentDetail{
		ID:        d.ID(),
		Name:      d.Name(),
		Size:      d.Size(),
		Status:    d.Status(),
		FileID:    d.FileID(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}
