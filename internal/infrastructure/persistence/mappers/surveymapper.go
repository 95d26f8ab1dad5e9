package mappers

import (
	"fmt"

	"haitch/internal/domain/survey"
	"haitch/internal/infrastructure/persistence/models"
)

// SurveyMapper converts survey aggregates to and from their row sets.
type SurveyMapper interface {
	ToEntity(model *models.SurveyModel, questions []*models.SurveyQuestionModel, options []*models.SurveyOptionModel) (*survey.Survey, error)
	ToModel(entity *survey.Survey) *models.SurveyModel
	QuestionModels(entity *survey.Survey) []*models.SurveyQuestionModel
	OptionModels(q *survey.Question) []*models.SurveyOptionModel
}

type surveyMapperImpl struct{}

func NewSurveyMapper() SurveyMapper {
	return &surveyMapperImpl{}
}

func (m *surveyMapperImpl) ToEntity(model *models.SurveyModel, questionRows []*models.SurveyQuestionModel, optionRows []*models.SurveyOptionModel) (*survey.Survey, error) {
	if model == nil {
		return nil, nil
	}

	optionsByQuestion := make(map[uint][]*survey.Option)
	for _, o := range optionRows {
		optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], &survey.Option{
			ID:   o.ID,
			Text: o.Text,
			Sort: o.Sort,
		})
	}

	questions := make([]*survey.Question, 0, len(questionRows))
	for _, q := range questionRows {
		questions = append(questions, &survey.Question{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Sort:     q.Sort,
			Options:  optionsByQuestion[q.ID],
		})
	}

	entity, err := survey.ReconstructSurvey(
		model.ID,
		model.Title,
		model.Description,
		model.Status,
		questions,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct survey: %w", err)
	}
	return entity, nil
}

func (m *surveyMapperImpl) ToModel(entity *survey.Survey) *models.SurveyModel {
	if entity == nil {
		return nil
	}

	return &models.SurveyModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Status:      entity.Status(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *surveyMapperImpl) QuestionModels(entity *survey.Survey) []*models.SurveyQuestionModel {
	rows := make([]*models.SurveyQuestionModel, 0, len(entity.Questions()))
	for _, q := range entity.Questions() {
		rows = append(rows, &models.SurveyQuestionModel{
			ID:       q.ID,
			SurveyID: entity.ID(),
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Sort:     q.Sort,
		})
	}
	return rows
}

func (m *surveyMapperImpl) OptionModels(q *survey.Question) []*models.SurveyOptionModel {
	rows := make([]*models.SurveyOptionModel, 0, len(q.Options))
	for _, o := range q.Options {
		rows = append(rows, &models.SurveyOptionModel{
			ID:         o.ID,
			QuestionID: q.ID,
			Text:       o.Text,
			Sort:       o.Sort,
		})
	}
	return rows
}
