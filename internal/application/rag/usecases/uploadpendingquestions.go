package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"haitch/internal/domain/rag"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

const defaultQuestionBatchSize = 100

// UploadPendingQuestionsUseCase is the scheduled batch job that pushes
// pending answered questions into the knowledge base.
type UploadPendingQuestionsUseCase struct {
	repo      rag.QuestionRepository
	knowledge KnowledgeStore
	txManager *db.TransactionManager
	limiter   *rate.Limiter
	batchSize int
	logger    logger.Interface
}

func NewUploadPendingQuestionsUseCase(
	repo rag.QuestionRepository,
	knowledge KnowledgeStore,
	txManager *db.TransactionManager,
	uploadsPerSecond int,
	logger logger.Interface,
) *UploadPendingQuestionsUseCase {
	if uploadsPerSecond <= 0 {
		uploadsPerSecond = 5
	}
	return &UploadPendingQuestionsUseCase{
		repo:      repo,
		knowledge: knowledge,
		txManager: txManager,
		limiter:   rate.NewLimiter(rate.Limit(uploadsPerSecond), 1),
		batchSize: defaultQuestionBatchSize,
		logger:    logger,
	}
}

// Execute processes one batch. Remote uploads run row by row under the rate
// cap; failures are logged and skipped. The status updates for all uploaded
// rows commit in a single transaction, so a database error rolls the whole
// batch back.
func (uc *UploadPendingQuestionsUseCase) Execute(ctx context.Context) (int, error) {
	pending, err := uc.repo.ListUploadable(ctx, uc.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list uploadable questions: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	uc.logger.Infow("uploading pending questions", "count", len(pending))

	var uploaded []*rag.Question
	for _, q := range pending {
		if err := uc.limiter.Wait(ctx); err != nil {
			break
		}

		fileID, err := uc.knowledge.UploadDocument(ctx, questionFileName(q.ID()), []byte(q.KnowledgeText()))
		if err != nil {
			uc.logger.Warnw("failed to upload question", "question_id", q.ID(), "error", err)
			continue
		}

		q.MarkProcessed(fileID, time.Now())
		uploaded = append(uploaded, q)
	}

	if len(uploaded) == 0 {
		return 0, nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, q := range uploaded {
			if err := uc.repo.Update(txCtx, q); err != nil {
				return fmt.Errorf("failed to mark question %d processed: %w", q.ID(), err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(uploaded), nil
}

func questionFileName(questionID uint) string {
	return fmt.Sprintf("question_%d.txt", questionID)
}
