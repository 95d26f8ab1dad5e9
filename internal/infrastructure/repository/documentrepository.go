package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"haitch/internal/domain/rag"
	"haitch/internal/infrastructure/persistence/mappers"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

// DocumentRepository implements the document repository interface
type DocumentRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
	logger logger.Interface
}

func NewDocumentRepository(database *gorm.DB, log logger.Interface) rag.DocumentRepository {
	return &DocumentRepository{
		db:     database,
		mapper: mappers.NewDocumentMapper(),
		logger: log,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, entity *rag.Document) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map document entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create document", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create document: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set document ID: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*rag.Document, error) {
	var model models.DocumentModel

	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DocumentRepository) Update(ctx context.Context, entity *rag.Document) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map document entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"path":       model.Path,
			"size":       model.Size,
			"file_id":    model.FileID,
			"status":     model.Status,
			"is_delete":  model.IsDelete,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	now := time.Now()
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Where("id = ? AND is_delete = ?", id, 0).
		Updates(map[string]interface{}{
			"is_delete":  1,
			"updated_at": &now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context, page, pageSize int) ([]*rag.Document, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Scopes(db.NotDeleted())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	var rows []*models.DocumentModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
