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

type AnswerInput struct {
	QuestionID uint
	Text       *string
	// OptionIDs carries the selection order for choice questions.
	OptionIDs []uint
}

type SubmitResponseCommand struct {
	SurveyID      uint
	SubmitterName string
	Phone         string
	Answers       []AnswerInput
}

type AnswerDetail struct {
	QuestionID uint
	Text       *string
	OptionIDs  []uint
}

type ResponseDetail struct {
	ID            uint
	SurveyID      uint
	SubmitterName string
	Phone         string
	Answers       []AnswerDetail
	CreatedAt     time.Time
}

type ListResponsesResult struct {
	Responses []*ResponseDetail
	Total     int64
}

// ResponseUseCases handles survey submissions.
type ResponseUseCases struct {
	surveyRepo   survey.Repository
	responseRepo survey.ResponseRepository
	logger       logger.Interface
}

func NewResponseUseCases(
	surveyRepo survey.Repository,
	responseRepo survey.ResponseRepository,
	logger logger.Interface,
) *ResponseUseCases {
	return &ResponseUseCases{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		logger:       logger,
	}
}

func (uc *ResponseUseCases) Submit(ctx context.Context, cmd SubmitResponseCommand) (*ResponseDetail, error) {
	s, err := uc.surveyRepo.GetByID(ctx, cmd.SurveyID)
	if err != nil {
		uc.logger.Errorw("failed to get survey", "survey_id", cmd.SurveyID, "error", err)
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("survey not found")
	}

	answers := make([]*survey.Answer, 0, len(cmd.Answers))
	for _, a := range cmd.Answers {
		answers = append(answers, &survey.Answer{
			QuestionID: a.QuestionID,
			Text:       a.Text,
			OptionIDs:  a.OptionIDs,
		})
	}

	response, err := survey.BuildResponse(s, cmd.SubmitterName, cmd.Phone, answers)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.responseRepo.Create(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "survey_id", cmd.SurveyID, "error", err)
		return nil, err
	}

	uc.logger.Infow("survey response submitted", "survey_id", cmd.SurveyID, "response_id", response.ID)
	return toResponseDetail(response), nil
}

func (uc *ResponseUseCases) ListBySurvey(ctx context.Context, surveyID uint, page, pageSize int) (*ListResponsesResult, error) {
	s, err := uc.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError("survey not found")
	}

	page, pageSize = utils.NormalizePagination(page, pageSize)

	responses, total, err := uc.responseRepo.ListBySurveyID(ctx, surveyID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list responses", "survey_id", surveyID, "error", err)
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	details := make([]*ResponseDetail, 0, len(responses))
	for _, r := range responses {
		details = append(details, toResponseDetail(r))
	}
	return &ListResponsesResult{Responses: details, Total: total}, nil
}

func toResponseDetail(r *survey.Response) *ResponseDetail {
	answers := make([]AnswerDetail, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, AnswerDetail{
			QuestionID: a.QuestionID,
			Text:       a.Text,
			OptionIDs:  a.OptionIDs,
		})
	}

	return &ResponseDetail{
		ID:            r.ID,
		SurveyID:      r.SurveyID,
		SubmitterName: r.SubmitterName,
		Phone:         r.Phone,
		Answers:       answers,
		CreatedAt:     r.CreatedAt,
	}
}
