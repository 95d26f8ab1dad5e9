package models

import (
	"time"

	"haitch/internal/shared/constants"
)

// SurveyModel represents a survey definition.
type SurveyModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"not null;default:draft;size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SurveyModel) TableName() string {
	return constants.TableSurveys
}

// SurveyQuestionModel is a question inside a survey.
type SurveyQuestionModel struct {
	ID        uint   `gorm:"primarykey"`
	SurveyID  uint   `gorm:"not null;index:idx_survey_questions_survey_id"`
	Text      string `gorm:"not null;size:500"`
	Type      string `gorm:"not null;size:20"`
	Required  bool   `gorm:"not null;default:false"`
	Sort      int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (SurveyQuestionModel) TableName() string {
	return constants.TableSurveyQuestions
}

// SurveyOptionModel is a selectable option for choice questions.
type SurveyOptionModel struct {
	ID         uint   `gorm:"primarykey"`
	QuestionID uint   `gorm:"not null;index:idx_survey_options_question_id"`
	Text       string `gorm:"not null;size:255"`
	Sort       int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (SurveyOptionModel) TableName() string {
	return constants.TableSurveyOptions
}

// SurveyResponseModel is one submission of a survey.
type SurveyResponseModel struct {
	ID            uint   `gorm:"primarykey"`
	SurveyID      uint   `gorm:"not null;index:idx_survey_responses_survey_id"`
	SubmitterName string `gorm:"size:100"`
	Phone         string `gorm:"size:20"`
	CreatedAt     time.Time
}

func (SurveyResponseModel) TableName() string {
	return constants.TableSurveyResponses
}

// SurveyAnswerModel is the answer to one question within a response.
type SurveyAnswerModel struct {
	ID         uint `gorm:"primarykey"`
	ResponseID uint `gorm:"not null;index:idx_survey_answers_response_id"`
	QuestionID uint `gorm:"not null;index:idx_survey_answers_question_id"`
	Text       *string
	CreatedAt  time.Time
}

func (SurveyAnswerModel) TableName() string {
	return constants.TableSurveyAnswers
}

// SurveyAnswerChoiceModel stores one selected option of a choice answer.
// Sort preserves the order options were picked in.
type SurveyAnswerChoiceModel struct {
	ID       uint `gorm:"primarykey"`
	AnswerID uint `gorm:"not null;index:idx_survey_answer_choices_answer_id"`
	OptionID uint `gorm:"not null"`
	Sort     int  `gorm:"not null;default:0"`
}

func (SurveyAnswerChoiceModel) TableName() string {
	return constants.TableSurveyAnswerChoices
}
