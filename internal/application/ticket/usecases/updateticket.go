package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/db"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/goroutine"
	"haitch/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID         uint
	Title            string
	DeviceModel      string
	Customer         string
	FaultDescription string
	HandleProcess    string
	Status           string
	HandlerName      string
	NewAttachments   []AttachmentInput
	// DeleteAttachmentIDs lists attachment rows to unlink and remove.
	DeleteAttachmentIDs []uint
	OperatorID          uint
}

type UpdateTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	historyRepo    ticket.HistoryRepository
	knowledge      KnowledgeStore
	files          FileRemover
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	historyRepo ticket.HistoryRepository,
	knowledge KnowledgeStore,
	files FileRemover,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		historyRepo:    historyRepo,
		knowledge:      knowledge,
		files:          files,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDetail, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	before := ticketSnapshot(existing)
	previousFileID := existing.FileID()

	if err := existing.Update(cmd.Title, cmd.DeviceModel, cmd.Customer, cmd.FaultDescription, cmd.HandleProcess, cmd.Status, cmd.HandlerName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var removedPaths []string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		for _, id := range cmd.DeleteAttachmentIDs {
			a, err := uc.attachmentRepo.GetByID(txCtx, id)
			if err != nil {
				return fmt.Errorf("failed to get attachment: %w", err)
			}
			if a == nil {
				continue
			}
			if err := uc.attachmentRepo.Unlink(txCtx, cmd.TicketID, id); err != nil {
				return fmt.Errorf("failed to unlink attachment: %w", err)
			}
			if err := uc.attachmentRepo.Delete(txCtx, id); err != nil {
				return fmt.Errorf("failed to delete attachment: %w", err)
			}
			removedPaths = append(removedPaths, a.Path())
		}

		for _, in := range cmd.NewAttachments {
			a, err := ticket.NewAttachment(in.FileName, in.StoredName, in.Path, in.Size, in.MimeType)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.attachmentRepo.Create(txCtx, a); err != nil {
				return fmt.Errorf("failed to save attachment: %w", err)
			}
			if err := uc.attachmentRepo.Link(txCtx, cmd.TicketID, a.ID()); err != nil {
				return fmt.Errorf("failed to link attachment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// Disk cleanup happens after the transaction committed; a failed removal
	// only leaves an orphan file behind.
	for _, path := range removedPaths {
		if err := uc.files.Remove(path); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "path", path, "error", err)
		}
	}

	uc.recordHistory(ctx, existing, before, cmd.OperatorID)
	uc.reuploadAsync(existing, previousFileID)

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)
	return toTicketDetail(existing, attachments), nil
}

// reuploadAsync replaces the knowledge-base document for the ticket. The old
// document is removed first so searches never return both versions.
func (uc *UpdateTicketUseCase) reuploadAsync(t *ticket.Ticket, previousFileID *string) {
	goroutine.SafeGo(uc.logger, "ticket-knowledge-reupload", func() {
		ctx := context.Background()

		if previousFileID != nil {
			if err := uc.knowledge.DeleteDocument(ctx, *previousFileID); err != nil {
				uc.logger.Warnw("failed to delete stale knowledge document", "ticket_id", t.ID(), "file_id", *previousFileID, "error", err)
			}
		}

		fileID, err := uc.knowledge.UploadDocument(ctx, knowledgeFileName(t.ID()), []byte(t.KnowledgeText()))
		if err != nil {
			uc.logger.Errorw("failed to upload ticket to knowledge base", "ticket_id", t.ID(), "error", err)
			return
		}

		t.MarkUploaded(fileID)
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to record knowledge file id", "ticket_id", t.ID(), "error", err)
		}
	})
}

func (uc *UpdateTicketUseCase) recordHistory(ctx context.Context, t *ticket.Ticket, before []byte, operatorID uint) {
	entry := &ticket.HistoryEntry{
		TicketID:   t.ID(),
		Action:     ticket.HistoryActionUpdate,
		Before:     before,
		After:      ticketSnapshot(t),
		OperatorID: operatorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.historyRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record ticket history", "ticket_id", t.ID(), "error", err)
	}
}
