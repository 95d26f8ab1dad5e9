package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"haitch/internal/domain/survey"
	"haitch/internal/infrastructure/persistence/mappers"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

// SurveyRepository implements the survey repository interface. A survey is
// persisted as a survey row plus its question and option rows; writes that
// touch more than one table run inside the caller's transaction.
type SurveyRepository struct {
	db     *gorm.DB
	mapper mappers.SurveyMapper
	logger logger.Interface
}

func NewSurveyRepository(database *gorm.DB, log logger.Interface) survey.Repository {
	return &SurveyRepository{
		db:     database,
		mapper: mappers.NewSurveyMapper(),
		logger: log,
	}
}

func (r *SurveyRepository) Create(ctx context.Context, entity *survey.Survey) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(entity)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create survey", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create survey: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set survey ID: %w", err)
	}

	return r.insertQuestions(tx, entity)
}

func (r *SurveyRepository) insertQuestions(tx *gorm.DB, entity *survey.Survey) error {
	for _, q := range entity.Questions() {
		row := &models.SurveyQuestionModel{
			SurveyID: entity.ID(),
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Sort:     q.Sort,
		}
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create survey question: %w", err)
		}
		q.ID = row.ID

		for _, o := range q.Options {
			optRow := &models.SurveyOptionModel{
				QuestionID: q.ID,
				Text:       o.Text,
				Sort:       o.Sort,
			}
			if err := tx.Create(optRow).Error; err != nil {
				return fmt.Errorf("failed to create survey option: %w", err)
			}
			o.ID = optRow.ID
		}
	}
	return nil
}

func (r *SurveyRepository) GetByID(ctx context.Context, id uint) (*survey.Survey, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SurveyModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	var questions []*models.SurveyQuestionModel
	if err := tx.Where("survey_id = ?", id).
		Order("sort ASC, id ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to load survey questions: %w", err)
	}

	questionIDs := make([]uint, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID)
	}

	var options []*models.SurveyOptionModel
	if len(questionIDs) > 0 {
		if err := tx.Where("question_id IN ?", questionIDs).
			Order("sort ASC, id ASC").
			Find(&options).Error; err != nil {
			return nil, fmt.Errorf("failed to load survey options: %w", err)
		}
	}

	return r.mapper.ToEntity(&model, questions, options)
}

func (r *SurveyRepository) Update(ctx context.Context, entity *survey.Survey) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(entity)
	result := tx.Model(&models.SurveyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update survey: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// Definition updates rewrite questions and options wholesale.
	if err := r.deleteQuestions(tx, entity.ID()); err != nil {
		return err
	}
	return r.insertQuestions(tx, entity)
}

func (r *SurveyRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := r.deleteQuestions(tx, id); err != nil {
		return err
	}

	result := tx.Delete(&models.SurveyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete survey: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("survey deleted", "id", id)
	return nil
}

func (r *SurveyRepository) deleteQuestions(tx *gorm.DB, surveyID uint) error {
	var questionIDs []uint
	if err := tx.Model(&models.SurveyQuestionModel{}).
		Where("survey_id = ?", surveyID).
		Pluck("id", &questionIDs).Error; err != nil {
		return fmt.Errorf("failed to load question ids: %w", err)
	}

	if len(questionIDs) > 0 {
		if err := tx.Where("question_id IN ?", questionIDs).
			Delete(&models.SurveyOptionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete survey options: %w", err)
		}
	}

	if err := tx.Where("survey_id = ?", surveyID).
		Delete(&models.SurveyQuestionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete survey questions: %w", err)
	}
	return nil
}

func (r *SurveyRepository) List(ctx context.Context, page, pageSize int) ([]*survey.Survey, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.SurveyModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count surveys: %w", err)
	}

	var rows []*models.SurveyModel
	if err := tx.Scopes(db.Paginate(page, pageSize)).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list surveys: %w", err)
	}

	// List views don't need questions loaded.
	surveys := make([]*survey.Survey, 0, len(rows))
	for _, row := range rows {
		entity, err := r.mapper.ToEntity(row, nil, nil)
		if err != nil {
			return nil, 0, err
		}
		surveys = append(surveys, entity)
	}

	return surveys, total, nil
}
