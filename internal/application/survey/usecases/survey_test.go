package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/survey"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type mockSurveyRepo struct {
	GetByIDFunc func(ctx context.Context, id uint) (*survey.Survey, error)

	created []*survey.Survey
	updated []*survey.Survey
	deleted []uint
}

func (m *mockSurveyRepo) Create(_ context.Context, s *survey.Survey) error {
	if err := s.SetID(uint(len(m.created) + 1)); err != nil {
		return err
	}
	m.created = append(m.created, s)
	return nil
}

func (m *mockSurveyRepo) GetByID(ctx context.Context, id uint) (*survey.Survey, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSurveyRepo) Update(_ context.Context, s *survey.Survey) error {
	m.updated = append(m.updated, s)
	return nil
}

func (m *mockSurveyRepo) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockSurveyRepo) List(_ context.Context, _, _ int) ([]*survey.Survey, int64, error) {
	return m.created, int64(len(m.created)), nil
}

type mockResponseRepo struct {
	created []*survey.Response
}

func (m *mockResponseRepo) Create(_ context.Context, r *survey.Response) error {
	r.ID = uint(len(m.created) + 1)
	m.created = append(m.created, r)
	return nil
}

func (m *mockResponseRepo) ListBySurveyID(_ context.Context, _ uint, _, _ int) ([]*survey.Response, int64, error) {
	return m.created, int64(len(m.created)), nil
}

func (m *mockResponseRepo) CountBySurveyID(_ context.Context, _ uint) (int64, error) {
	return int64(len(m.created)), nil
}

func testCreatedAt() time.Time {
	return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
}

func publishedSurvey(t *testing.T) *survey.Survey {
	t.Helper()
	questions := []*survey.Question{
		{
			ID:   1,
			Text: "How satisfied are you?",
			Type: survey.QuestionTypeSingle, Required: true,
			Options: []*survey.Option{{ID: 10, Text: "Good"}, {ID: 11, Text: "Bad"}},
		},
		{
			ID:   2,
			Text: "What went well?",
			Type: survey.QuestionTypeMulti,
			Options: []*survey.Option{
				{ID: 20, Text: "Speed"}, {ID: 21, Text: "Quality"}, {ID: 22, Text: "Support"},
			},
		},
	}
	s, err := survey.ReconstructSurvey(3, "Service survey", "", survey.StatusPublished, questions, testCreatedAt(), testCreatedAt())
	require.NoError(t, err)
	return s
}

func TestCreateSurvey_Draft(t *testing.T) {
	repo := &mockSurveyRepo{}
	uc := NewSurveyUseCases(repo, &mockResponseRepo{}, logger.NewLogger())

	detail, err := uc.Create(context.Background(), SurveyCommand{
		Title: "Service survey",
		Questions: []QuestionInput{
			{Text: "Any comments?", Type: survey.QuestionTypeText},
			{Text: "Rating?", Type: survey.QuestionTypeSingle, Options: []OptionInput{{Text: "1"}, {Text: "2"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, survey.StatusDraft, detail.Status)
	require.Len(t, detail.Questions, 2)
	assert.Equal(t, 0, detail.Questions[0].Sort)
	assert.Equal(t, 1, detail.Questions[1].Sort)
}

func TestCreateSurvey_ChoiceNeedsOptions(t *testing.T) {
	uc := NewSurveyUseCases(&mockSurveyRepo{}, &mockResponseRepo{}, logger.NewLogger())

	_, err := uc.Create(context.Background(), SurveyCommand{
		Title: "Bad survey",
		Questions: []QuestionInput{
			{Text: "Rating?", Type: survey.QuestionTypeSingle, Options: []OptionInput{{Text: "only one"}}},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitResponse_PreservesSelectionOrder(t *testing.T) {
	s := publishedSurvey(t)
	surveyRepo := &mockSurveyRepo{
		GetByIDFunc: func(_ context.Context, _ uint) (*survey.Survey, error) { return s, nil },
	}
	responseRepo := &mockResponseRepo{}
	uc := NewResponseUseCases(surveyRepo, responseRepo, logger.NewLogger())

	detail, err := uc.Submit(context.Background(), SubmitResponseCommand{
		SurveyID:      3,
		SubmitterName: "Carol",
		Phone:         "13900139000",
		Answers: []AnswerInput{
			{QuestionID: 1, OptionIDs: []uint{11}},
			{QuestionID: 2, OptionIDs: []uint{22, 20}},
		},
	})
	require.NoError(t, err)

	require.Len(t, detail.Answers, 2)
	assert.Equal(t, []uint{22, 20}, detail.Answers[1].OptionIDs)
	require.Len(t, responseRepo.created, 1)
}

func TestSubmitResponse_MissingRequired(t *testing.T) {
	s := publishedSurvey(t)
	surveyRepo := &mockSurveyRepo{
		GetByIDFunc: func(_ context.Context, _ uint) (*survey.Survey, error) { return s, nil },
	}
	uc := NewResponseUseCases(surveyRepo, &mockResponseRepo{}, logger.NewLogger())

	_, err := uc.Submit(context.Background(), SubmitResponseCommand{
		SurveyID: 3,
		Answers:  []AnswerInput{{QuestionID: 2, OptionIDs: []uint{20}}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitResponse_DraftRejected(t *testing.T) {
	draft, err := survey.NewSurvey("Draft", "", []*survey.Question{
		{Text: "Q", Type: survey.QuestionTypeText},
	})
	require.NoError(t, err)
	require.NoError(t, draft.SetID(5))

	surveyRepo := &mockSurveyRepo{
		GetByIDFunc: func(_ context.Context, _ uint) (*survey.Survey, error) { return draft, nil },
	}
	uc := NewResponseUseCases(surveyRepo, &mockResponseRepo{}, logger.NewLogger())

	text := "hello"
	_, err = uc.Submit(context.Background(), SubmitResponseCommand{
		SurveyID: 5,
		Answers:  []AnswerInput{{QuestionID: 0, Text: &text}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestPublishThenClose(t *testing.T) {
	draft, err := survey.NewSurvey("S", "", []*survey.Question{
		{Text: "Q", Type: survey.QuestionTypeText},
	})
	require.NoError(t, err)
	require.NoError(t, draft.SetID(8))

	repo := &mockSurveyRepo{
		GetByIDFunc: func(_ context.Context, _ uint) (*survey.Survey, error) { return draft, nil },
	}
	uc := NewSurveyUseCases(repo, &mockResponseRepo{}, logger.NewLogger())

	detail, err := uc.Publish(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, survey.StatusPublished, detail.Status)

	detail, err = uc.Close(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, survey.StatusClosed, detail.Status)

	// Closing twice fails
	_, err = uc.Close(context.Background(), 8)
	require.Error(t, err)
}
