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

type QuestionDetail struct {
	ID        uint
	Question  string
	Answer    string
	Status    int
	FileID    *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type ListQuestionsResult struct {
	Questions []*QuestionDetail
	Total     int64
}

// QuestionUseCases bundles the curated Q&A operations. Edits reset the row
// to pending so the background uploader pushes the new content.
type QuestionUseCases struct {
	repo      rag.QuestionRepository
	knowledge KnowledgeStore
	logger    logger.Interface
}

func NewQuestionUseCases(repo rag.QuestionRepository, knowledge KnowledgeStore, logger logger.Interface) *QuestionUseCases {
	return &QuestionUseCases{repo: repo, knowledge: knowledge, logger: logger}
}

func (uc *QuestionUseCases) Create(ctx context.Context, question, answer string) (*QuestionDetail, error) {
	q, err := rag.NewQuestion(question, answer)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, q); err != nil {
		uc.logger.Errorw("failed to create question", "error", err)
		return nil, err
	}

	uc.logger.Infow("question created", "question_id", q.ID())
	return toQuestionDetail(q), nil
}

func (uc *QuestionUseCases) Update(ctx context.Context, id uint, question, answer string) (*QuestionDetail, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get question", "question_id", id, "error", err)
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("question not found")
	}

	if err := q.Update(question, answer); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, q); err != nil {
		uc.logger.Errorw("failed to update question", "question_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("question updated", "question_id", id)
	return toQuestionDetail(q), nil
}

func (uc *QuestionUseCases) Get(ctx context.Context, id uint) (*QuestionDetail, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("question not found")
	}
	return toQuestionDetail(q), nil
}

func (uc *QuestionUseCases) List(ctx context.Context, page, pageSize int) (*ListQuestionsResult, error) {
	page, pageSize = utils.NormalizePagination(page, pageSize)

	questions, total, err := uc.repo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list questions", "error", err)
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	details := make([]*QuestionDetail, 0, len(questions))
	for _, q := range questions {
		details = append(details, toQuestionDetail(q))
	}
	return &ListQuestionsResult{Questions: details, Total: total}, nil
}

// Delete soft-deletes the row, then removes the remote document when one
// exists. Remote failures are logged, not rolled back.
func (uc *QuestionUseCases) Delete(ctx context.Context, id uint) error {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get question: %w", err)
	}
	if q == nil {
		return errors.NewNotFoundError("question not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete question", "question_id", id, "error", err)
		return err
	}

	if fileID := q.FileID(); fileID != nil {
		if err := uc.knowledge.DeleteDocument(ctx, *fileID); err != nil {
			uc.logger.Warnw("failed to delete knowledge document", "question_id", id, "file_id", *fileID, "error", err)
		}
	}

	uc.logger.Infow("question deleted", "question_id", id)
	return nil
}

func toQuestionDetail(q *rag.Question) *QuestionDetail {
	return &QuestionDetail{
		ID:        q.ID(),
		Question:  q.Question(),
		Answer:    q.Answer(),
		Status:    q.Status(),
		FileID:    q.FileID(),
		CreatedAt: q.CreatedAt(),
		UpdatedAt: q.UpdatedAt(),
	}
}
