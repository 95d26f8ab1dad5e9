package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"haitch/internal/domain/ticket"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
)

// TicketHistoryRepository persists ticket audit entries.
type TicketHistoryRepository struct {
	db *gorm.DB
}

func NewTicketHistoryRepository(database *gorm.DB) ticket.HistoryRepository {
	return &TicketHistoryRepository{db: database}
}

func (r *TicketHistoryRepository) Record(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := &models.TicketHistoryModel{
		TicketID:   entry.TicketID,
		Action:     entry.Action,
		Before:     entry.Before,
		After:      entry.After,
		OperatorID: entry.OperatorID,
		CreatedAt:  entry.CreatedAt,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record ticket history: %w", err)
	}

	entry.ID = model.ID
	return nil
}

func (r *TicketHistoryRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var rows []*models.TicketHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket history: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &ticket.HistoryEntry{
			ID:         row.ID,
			TicketID:   row.TicketID,
			Action:     row.Action,
			Before:     row.Before,
			After:      row.After,
			OperatorID: row.OperatorID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return entries, nil
}
