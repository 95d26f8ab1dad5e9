package survey

import (
	"haitch/internal/application/survey/usecases"
)

type OptionRequest struct {
	Text string `json:"text" binding:"required,max=200"`
}

type QuestionRequest struct {
	Text     string          `json:"text" binding:"required,max=500"`
	Type     string          `json:"type" binding:"required,oneof=single multi text"`
	Required bool            `json:"required"`
	Options  []OptionRequest `json:"options" binding:"omitempty,dive"`
}

type SurveyRequest struct {
	Title       string            `json:"title" binding:"required,max=200"`
	Description string            `json:"description" binding:"omitempty,max=2000"`
	Questions   []QuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

func (r *SurveyRequest) ToCommand() usecases.SurveyCommand {
	questions := make([]usecases.QuestionInput, 0, len(r.Questions))
	for _, q := range r.Questions {
		options := make([]usecases.OptionInput, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, usecases.OptionInput{Text: o.Text})
		}
		questions = append(questions, usecases.QuestionInput{
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Options:  options,
		})
	}
	return usecases.SurveyCommand{
		Title:       r.Title,
		Description: r.Description,
		Questions:   questions,
	}
}

type AnswerRequest struct {
	QuestionID uint    `json:"question_id" binding:"required"`
	Text       *string `json:"text"`
	// OptionIDs keeps the order the respondent picked the options in.
	OptionIDs []uint `json:"option_ids"`
}

type SubmitResponseRequest struct {
	SubmitterName string          `json:"submitter_name" binding:"omitempty,max=50"`
	Phone         string          `json:"phone" binding:"omitempty,cn_phone"`
	Answers       []AnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

func (r *SubmitResponseRequest) ToCommand(surveyID uint) usecases.SubmitResponseCommand {
	answers := make([]usecases.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, usecases.AnswerInput{
			QuestionID: a.QuestionID,
			Text:       a.Text,
			OptionIDs:  a.OptionIDs,
		})
	}
	return usecases.SubmitResponseCommand{
		SurveyID:      surveyID,
		SubmitterName: r.SubmitterName,
		Phone:         r.Phone,
		Answers:       answers,
	}
}
