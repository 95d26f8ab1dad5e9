package usecases

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/logger"
)

const defaultTicketBatchSize = 50

// UploadPendingTicketsUseCase retries knowledge-base uploads for tickets
// whose async upload failed. It runs from the background scheduler.
type UploadPendingTicketsUseCase struct {
	ticketRepo ticket.Repository
	knowledge  KnowledgeStore
	limiter    *rate.Limiter
	batchSize  int
	logger     logger.Interface
}

func NewUploadPendingTicketsUseCase(
	ticketRepo ticket.Repository,
	knowledge KnowledgeStore,
	uploadsPerSecond int,
	logger logger.Interface,
) *UploadPendingTicketsUseCase {
	if uploadsPerSecond <= 0 {
		uploadsPerSecond = 5
	}
	return &UploadPendingTicketsUseCase{
		ticketRepo: ticketRepo,
		knowledge:  knowledge,
		limiter:    rate.NewLimiter(rate.Limit(uploadsPerSecond), 1),
		batchSize:  defaultTicketBatchSize,
		logger:     logger,
	}
}

// Execute uploads one batch of pending tickets. Per-row failures are logged
// and skipped so one bad row never blocks the rest of the batch.
func (uc *UploadPendingTicketsUseCase) Execute(ctx context.Context) (int, error) {
	pending, err := uc.ticketRepo.ListPendingUpload(ctx, uc.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending tickets: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	processed := 0
	for _, t := range pending {
		if err := uc.limiter.Wait(ctx); err != nil {
			return processed, err
		}

		fileID, err := uc.knowledge.UploadDocument(ctx, knowledgeFileName(t.ID()), []byte(t.KnowledgeText()))
		if err != nil {
			uc.logger.Warnw("failed to upload pending ticket", "ticket_id", t.ID(), "error", err)
			continue
		}

		t.MarkUploaded(fileID)
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to record knowledge file id", "ticket_id", t.ID(), "error", err)
			continue
		}
		processed++
	}

	return processed, nil
}
