package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/db"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID   uint
	OperatorID uint
}

type DeleteTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	historyRepo    ticket.HistoryRepository
	knowledge      KnowledgeStore
	files          FileRemover
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	historyRepo ticket.HistoryRepository,
	knowledge KnowledgeStore,
	files FileRemover,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		historyRepo:    historyRepo,
		knowledge:      knowledge,
		files:          files,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to get ticket: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	before := ticketSnapshot(existing)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.attachmentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return fmt.Errorf("failed to delete attachments: %w", err)
		}
		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	for _, a := range attachments {
		if err := uc.files.Remove(a.Path()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "path", a.Path(), "error", err)
		}
	}

	// Remote cleanup is not rolled back on failure
	if fileID := existing.FileID(); fileID != nil {
		if err := uc.knowledge.DeleteDocument(ctx, *fileID); err != nil {
			uc.logger.Warnw("failed to delete knowledge document", "ticket_id", cmd.TicketID, "file_id", *fileID, "error", err)
		}
	}

	entry := &ticket.HistoryEntry{
		TicketID:   cmd.TicketID,
		Action:     ticket.HistoryActionDelete,
		Before:     before,
		OperatorID: cmd.OperatorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.historyRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record ticket history", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
