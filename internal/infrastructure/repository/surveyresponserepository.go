package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"haitch/internal/domain/survey"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
)

// SurveyResponseRepository persists survey submissions.
type SurveyResponseRepository struct {
	db *gorm.DB
}

func NewSurveyResponseRepository(database *gorm.DB) survey.ResponseRepository {
	return &SurveyResponseRepository{db: database}
}

func (r *SurveyResponseRepository) Create(ctx context.Context, response *survey.Response) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := &models.SurveyResponseModel{
		SurveyID:      response.SurveyID,
		SubmitterName: response.SubmitterName,
		Phone:         response.Phone,
		CreatedAt:     response.CreatedAt,
	}
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create survey response: %w", err)
	}
	response.ID = model.ID

	for _, a := range response.Answers {
		answerRow := &models.SurveyAnswerModel{
			ResponseID: response.ID,
			QuestionID: a.QuestionID,
			Text:       a.Text,
		}
		if err := tx.Create(answerRow).Error; err != nil {
			return fmt.Errorf("failed to create survey answer: %w", err)
		}
		a.ID = answerRow.ID

		for i, optionID := range a.OptionIDs {
			choiceRow := &models.SurveyAnswerChoiceModel{
				AnswerID: a.ID,
				OptionID: optionID,
				Sort:     i,
			}
			if err := tx.Create(choiceRow).Error; err != nil {
				return fmt.Errorf("failed to create answer choice: %w", err)
			}
		}
	}

	return nil
}

func (r *SurveyResponseRepository) ListBySurveyID(ctx context.Context, surveyID uint, page, pageSize int) ([]*survey.Response, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.SurveyResponseModel{}).Where("survey_id = ?", surveyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count responses: %w", err)
	}

	var responseRows []*models.SurveyResponseModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("id DESC").
		Find(&responseRows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list responses: %w", err)
	}

	responses := make([]*survey.Response, 0, len(responseRows))
	for _, row := range responseRows {
		response, err := r.loadResponse(tx, row)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, response)
	}

	return responses, total, nil
}

func (r *SurveyResponseRepository) loadResponse(tx *gorm.DB, row *models.SurveyResponseModel) (*survey.Response, error) {
	var answerRows []*models.SurveyAnswerModel
	if err := tx.Where("response_id = ?", row.ID).
		Order("id ASC").
		Find(&answerRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	answerIDs := make([]uint, 0, len(answerRows))
	for _, a := range answerRows {
		answerIDs = append(answerIDs, a.ID)
	}

	choicesByAnswer := make(map[uint][]uint)
	if len(answerIDs) > 0 {
		var choiceRows []*models.SurveyAnswerChoiceModel
		if err := tx.Where("answer_id IN ?", answerIDs).
			Order("sort ASC").
			Find(&choiceRows).Error; err != nil {
			return nil, fmt.Errorf("failed to load answer choices: %w", err)
		}
		for _, c := range choiceRows {
			choicesByAnswer[c.AnswerID] = append(choicesByAnswer[c.AnswerID], c.OptionID)
		}
	}

	answers := make([]*survey.Answer, 0, len(answerRows))
	for _, a := range answerRows {
		answers = append(answers, &survey.Answer{
			ID:         a.ID,
			QuestionID: a.QuestionID,
			Text:       a.Text,
			OptionIDs:  choicesByAnswer[a.ID],
		})
	}

	return &survey.Response{
		ID:            row.ID,
		SurveyID:      row.SurveyID,
		SubmitterName: row.SubmitterName,
		Phone:         row.Phone,
		Answers:       answers,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func (r *SurveyResponseRepository) CountBySurveyID(ctx context.Context, surveyID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SurveyResponseModel{}).
		Where("survey_id = ?", surveyID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}
