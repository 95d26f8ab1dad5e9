package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/db"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/goroutine"
	"haitch/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title            string
	DeviceModel      string
	Customer         string
	FaultDescription string
	HandleProcess    string
	HandlerName      string
	CreatorID        uint
	Attachments      []AttachmentInput
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	historyRepo    ticket.HistoryRepository
	knowledge      KnowledgeStore
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	historyRepo ticket.HistoryRepository,
	knowledge KnowledgeStore,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		historyRepo:    historyRepo,
		knowledge:      knowledge,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.DeviceModel, cmd.Customer, cmd.FaultDescription, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.HandleProcess != "" || cmd.HandlerName != "" {
		if err := newTicket.Update(cmd.Title, cmd.DeviceModel, cmd.Customer, cmd.FaultDescription, cmd.HandleProcess, ticket.StatusOpen, cmd.HandlerName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		for _, in := range cmd.Attachments {
			a, err := ticket.NewAttachment(in.FileName, in.StoredName, in.Path, in.Size, in.MimeType)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.attachmentRepo.Create(txCtx, a); err != nil {
				return fmt.Errorf("failed to save attachment: %w", err)
			}
			if err := uc.attachmentRepo.Link(txCtx, newTicket.ID(), a.ID()); err != nil {
				return fmt.Errorf("failed to link attachment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.recordHistory(ctx, newTicket, cmd.CreatorID)
	uc.uploadAsync(newTicket)

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// uploadAsync pushes the serialized ticket into the knowledge base without
// blocking the request.
func (uc *CreateTicketUseCase) uploadAsync(t *ticket.Ticket) {
	goroutine.SafeGo(uc.logger, "ticket-knowledge-upload", func() {
		ctx := context.Background()

		fileID, err := uc.knowledge.UploadDocument(ctx, knowledgeFileName(t.ID()), []byte(t.KnowledgeText()))
		if err != nil {
			uc.logger.Errorw("failed to upload ticket to knowledge base", "ticket_id", t.ID(), "error", err)
			return
		}

		t.MarkUploaded(fileID)
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to record knowledge file id", "ticket_id", t.ID(), "error", err)
			return
		}

		uc.logger.Infow("ticket uploaded to knowledge base", "ticket_id", t.ID(), "file_id", fileID)
	})
}

func (uc *CreateTicketUseCase) recordHistory(ctx context.Context, t *ticket.Ticket, operatorID uint) {
	entry := &ticket.HistoryEntry{
		TicketID:   t.ID(),
		Action:     ticket.HistoryActionCreate,
		After:      ticketSnapshot(t),
		OperatorID: operatorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.historyRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record ticket history", "ticket_id", t.ID(), "error", err)
	}
}

func knowledgeFileName(ticketID uint) string {
	return fmt.Sprintf("ticket_%d.txt", ticketID)
}

func ticketSnapshot(t *ticket.Ticket) []byte {
	snapshot, err := json.Marshal(map[string]interface{}{
		"title":             t.Title(),
		"device_model":      t.DeviceModel(),
		"customer":          t.Customer(),
		"fault_description": t.FaultDescription(),
		"handle_process":    t.HandleProcess(),
		"status":            t.Status(),
		"handler_name":      t.HandlerName(),
	})
	if err != nil {
		return nil
	}
	return snapshot
}
