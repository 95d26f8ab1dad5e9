package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type TicketListItem struct {
	TicketID    uint
	Title       string
	DeviceModel string
	Customer    string
	Status      string
	CreatorID   uint
	HandlerName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListTicketsQuery struct {
	Page        int
	PageSize    int
	DeviceModel string
	Customer    string
	Status      string
	CreatorID   uint
}

type ListTicketsResult struct {
	Tickets []TicketListItem
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	page, pageSize := utils.NormalizePagination(query.Page, query.PageSize)

	filter := ticket.ListFilter{
		Page:        page,
		PageSize:    pageSize,
		DeviceModel: query.DeviceModel,
		Customer:    query.Customer,
		Status:      query.Status,
		CreatorID:   query.CreatorID,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{Tickets: toTicketListItems(tickets), Total: total}, nil
}

func toTicketListItems(tickets []*ticket.Ticket) []TicketListItem {
	items := make([]TicketListItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, TicketListItem{
			TicketID:    t.ID(),
			Title:       t.Title(),
			DeviceModel: t.DeviceModel(),
			Customer:    t.Customer(),
			Status:      t.Status(),
			CreatorID:   t.CreatorID(),
			HandlerName: t.HandlerName(),
			CreatedAt:   t.CreatedAt(),
			UpdatedAt:   t.UpdatedAt(),
		})
	}
	return items
}
