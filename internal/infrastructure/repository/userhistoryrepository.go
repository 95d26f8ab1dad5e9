package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"haitch/internal/domain/user"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
)

// UserHistoryRepository persists user audit entries.
type UserHistoryRepository struct {
	db *gorm.DB
}

func NewUserHistoryRepository(database *gorm.DB) user.HistoryRepository {
	return &UserHistoryRepository{db: database}
}

func (r *UserHistoryRepository) Record(ctx context.Context, entry *user.HistoryEntry) error {
	model := &models.UserHistoryModel{
		UserID:     entry.UserID,
		Action:     entry.Action,
		Before:     entry.Before,
		After:      entry.After,
		OperatorID: entry.OperatorID,
		CreatedAt:  entry.CreatedAt,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record user history: %w", err)
	}

	entry.ID = model.ID
	return nil
}

func (r *UserHistoryRepository) ListByUserID(ctx context.Context, userID uint) ([]*user.HistoryEntry, error) {
	var rows []*models.UserHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list user history: %w", err)
	}

	entries := make([]*user.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &user.HistoryEntry{
			ID:         row.ID,
			UserID:     row.UserID,
			Action:     row.Action,
			Before:     row.Before,
			After:      row.After,
			OperatorID: row.OperatorID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return entries, nil
}
