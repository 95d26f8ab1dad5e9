package usecases

import (
	"context"
	"fmt"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type SearchTicketsQuery struct {
	Keyword  string
	Page     int
	PageSize int
}

type SearchTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*ListTicketsResult, error) {
	if query.Keyword == "" {
		return nil, errors.NewValidationError("search keyword is required")
	}

	page, pageSize := utils.NormalizePagination(query.Page, query.PageSize)

	tickets, total, err := uc.ticketRepo.Search(ctx, query.Keyword, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "keyword", query.Keyword, "error", err)
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	return &ListTicketsResult{Tickets: toTicketListItems(tickets), Total: total}, nil
}
