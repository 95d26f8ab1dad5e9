package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/survey"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type OptionInput struct {
	Text string
}

type QuestionInput struct {
	Text     string
	Type     string
	Required bool
	Options  []OptionInput
}

type SurveyCommand struct {
	Title       string
	Description string
	Questions   []QuestionInput
}

type OptionDetail struct {
	ID   uint
	Text string
	Sort int
}

type QuestionDetail struct {
	ID       uint
	Text     string
	Type     string
	Required bool
	Sort     int
	Options  []OptionDetail
}

type SurveyDetail struct {
	ID          uint
	Title       string
	Description string
	Status      string
	Questions   []QuestionDetail
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SurveyListItem struct {
	ID          uint
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}

type ListSurveysResult struct {
	Surveys []SurveyListItem
	Total   int64
}

// SurveyUseCases bundles survey definition management.
type SurveyUseCases struct {
	repo         survey.Repository
	responseRepo survey.ResponseRepository
	logger       logger.Interface
}

func NewSurveyUseCases(repo survey.Repository, responseRepo survey.ResponseRepository, logger logger.Interface) *SurveyUseCases {
	return &SurveyUseCases{repo: repo, responseRepo: responseRepo, logger: logger}
}

func (uc *SurveyUseCases) Create(ctx context.Context, cmd SurveyCommand) (*SurveyDetail, error) {
	s, err := survey.NewSurvey(cmd.Title, cmd.Description, toDomainQuestions(cmd.Questions))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create survey", "error", err)
		return nil, err
	}

	uc.logger.Infow("survey created", "survey_id", s.ID())
	return toSurveyDetail(s), nil
}

func (uc *SurveyUseCases) Update(ctx context.Context, id uint, cmd SurveyCommand) (*SurveyDetail, error) {
	s, err := uc.getSurvey(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Update(cmd.Title, cmd.Description, toDomainQuestions(cmd.Questions)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update survey", "survey_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("survey updated", "survey_id", id)
	return toSurveyDetail(s), nil
}

func (uc *SurveyUseCases) Get(ctx context.Context, id uint) (*SurveyDetail, error) {
	s, err := uc.getSurvey(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSurveyDetail(s), nil
}

func (uc *SurveyUseCases) List(ctx context.Context, page, pageSize int) (*ListSurveysResult, error) {
	page, pageSize = utils.NormalizePagination(page, pageSize)

	surveys, total, err := uc.repo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list surveys", "error", err)
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}

	items := make([]SurveyListItem, 0, len(surveys))
	for _, s := range surveys {
		items = append(items, SurveyListItem{
			ID:          s.ID(),
			Title:       s.Title(),
			Description: s.Description(),
			Status:      s.Status(),
			CreatedAt:   s.CreatedAt(),
		})
	}
	return &ListSurveysResult{Surveys: items, Total: total}, nil
}

func (uc *SurveyUseCases) Delete(ctx context.Context, id uint) error {
	if _, err := uc.getSurvey(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete survey", "survey_id", id, "error", err)
		return err
	}

	uc.logger.Infow("survey deleted", "survey_id", id)
	return nil
}

func (uc *SurveyUseCases) Publish(ctx context.Context, id uint) (*SurveyDetail, error) {
	s, err := uc.getSurvey(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Publish(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to publish survey", "survey_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("survey published", "survey_id", id)
	return toSurveyDetail(s), nil
}

func (uc *SurveyUseCases) Close(ctx context.Context, id uint) (*SurveyDetail, error) {
	s, err := uc.getSurvey(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Close(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to close survey", "survey_id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("survey closed", "survey_id", id)
	return toSurveyDetail(s), nil
}

func (uc *SurveyUseCases) getSurvey(ctx context.Context, id uint) (*survey.Survey, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get survey", "survey_id", id, "error", err)
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("survey not found")
	}
	return s, nil
}

func toDomainQuestions(inputs []QuestionInput) []*survey.Question {
	questions := make([]*survey.Question, 0, len(inputs))
	for i, in := range inputs {
		options := make([]*survey.Option, 0, len(in.Options))
		for j, o := range in.Options {
			options = append(options, &survey.Option{Text: o.Text, Sort: j})
		}
		questions = append(questions, &survey.Question{
			Text:     in.Text,
			Type:     in.Type,
			Required: in.Required,
			Sort:     i,
			Options:  options,
		})
	}
	return questions
}

func toSurveyDetail(s *survey.Survey) *SurveyDetail {
	questions := make([]QuestionDetail, 0, len(s.Questions()))
	for _, q := range s.Questions() {
		options := make([]OptionDetail, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, OptionDetail{ID: o.ID, Text: o.Text, Sort: o.Sort})
		}
		questions = append(questions, QuestionDetail{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Sort:     q.Sort,
			Options:  options,
		})
	}

	return &SurveyDetail{
		ID:          s.ID(),
		Title:       s.Title(),
		Description: s.Description(),
		Status:      s.Status(),
		Questions:   questions,
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}
