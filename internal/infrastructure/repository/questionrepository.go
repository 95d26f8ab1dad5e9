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

// QuestionRepository implements the question repository interface
type QuestionRepository struct {
	db     *gorm.DB
	mapper mappers.QuestionMapper
	logger logger.Interface
}

func NewQuestionRepository(database *gorm.DB, log logger.Interface) rag.QuestionRepository {
	return &QuestionRepository{
		db:     database,
		mapper: mappers.NewQuestionMapper(),
		logger: log,
	}
}

func (r *QuestionRepository) Create(ctx context.Context, entity *rag.Question) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map question entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create question", "error", err)
		return fmt.Errorf("failed to create question: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set question ID: %w", err)
	}
	return nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uint) (*rag.Question, error) {
	var model models.QuestionModel

	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *QuestionRepository) Update(ctx context.Context, entity *rag.Question) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map question entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.QuestionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"question":   model.Question,
			"answer":     model.Answer,
			"status":     model.Status,
			"is_delete":  model.IsDelete,
			"file_id":    model.FileID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update question", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	now := time.Now()
	result := db.GetTxFromContext(ctx, r.db).Model(&models.QuestionModel{}).
		Where("id = ? AND is_delete = ?", id, 0).
		Updates(map[string]interface{}{
			"is_delete":  1,
			"updated_at": &now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *QuestionRepository) List(ctx context.Context, page, pageSize int) ([]*rag.Question, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.QuestionModel{}).
		Scopes(db.NotDeleted())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	var rows []*models.QuestionModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *QuestionRepository) ListUploadable(ctx context.Context, limit int) ([]*rag.Question, error) {
	var rows []*models.QuestionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("status = ? AND answer <> ''", rag.StatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list uploadable questions: %w", err)
	}

	return r.mapper.ToEntities(rows)
}
