package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type AttachmentDetail struct {
	ID       uint
	FileName string
	Size     int64
	MimeType string
}

type TicketDetail struct {
	TicketID         uint
	Title            string
	DeviceModel      string
	Customer         string
	FaultDescription string
	HandleProcess    string
	Status           string
	CreatorID        uint
	HandlerName      string
	Attachments      []AttachmentDetail
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type GetTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*TicketDetail, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return toTicketDetail(t, attachments), nil
}

func toTicketDetail(t *ticket.Ticket, attachments []*ticket.Attachment) *TicketDetail {
	details := make([]AttachmentDetail, 0, len(attachments))
	for _, a := range attachments {
		details = append(details, AttachmentDetail{
			ID:       a.ID(),
			FileName: a.FileName(),
			Size:     a.Size(),
			MimeType: a.MimeType(),
		})
	}

	return &TicketDetail{
		TicketID:         t.ID(),
		Title:            t.Title(),
		DeviceModel:      t.DeviceModel(),
		Customer:         t.Customer(),
		FaultDescription: t.FaultDescription(),
		HandleProcess:    t.HandleProcess(),
		Status:           t.Status(),
		CreatorID:        t.CreatorID(),
		HandlerName:      t.HandlerName(),
		Attachments:      details,
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}
