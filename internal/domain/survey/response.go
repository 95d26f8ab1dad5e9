package survey

import (
	"fmt"
	"time"
)

// Response is one submission of a published survey.
type Response struct {
	ID            uint
	SurveyID      uint
	SubmitterName string
	Phone         string
	Answers       []*Answer
	CreatedAt     time.Time
}

// Answer is the answer to a single question. Text answers fill Text; choice
// answers fill OptionIDs in the order the options were selected.
type Answer struct {
	ID         uint
	QuestionID uint
	Text       *string
	OptionIDs  []uint
}

// BuildResponse validates a submission against the survey definition.
func BuildResponse(s *Survey, submitterName, phone string, answers []*Answer) (*Response, error) {
	if s.Status() != StatusPublished {
		return nil, fmt.Errorf("survey is not accepting responses")
	}

	answered := make(map[uint]bool, len(answers))
	for _, a := range answers {
		q := s.FindQuestion(a.QuestionID)
		if q == nil {
			return nil, fmt.Errorf("unknown question id %d", a.QuestionID)
		}
		if answered[a.QuestionID] {
			return nil, fmt.Errorf("question %d answered twice", a.QuestionID)
		}
		answered[a.QuestionID] = true

		if err := validateAnswer(q, a); err != nil {
			return nil, err
		}
	}

	for _, q := range s.Questions() {
		if q.Required && !answered[q.ID] {
			return nil, fmt.Errorf("question %d is required", q.ID)
		}
	}

	return &Response{
		SurveyID:      s.ID(),
		SubmitterName: submitterName,
		Phone:         phone,
		Answers:       answers,
		CreatedAt:     time.Now(),
	}, nil
}

func validateAnswer(q *Question, a *Answer) error {
	switch q.Type {
	case QuestionTypeText:
		if len(a.OptionIDs) != 0 {
			return fmt.Errorf("question %d: text question cannot take options", q.ID)
		}
		if a.Text == nil || *a.Text == "" {
			return fmt.Errorf("question %d: text answer is empty", q.ID)
		}
	case QuestionTypeSingle:
		if len(a.OptionIDs) != 1 {
			return fmt.Errorf("question %d: single choice needs exactly one option", q.ID)
		}
		return validateOptions(q, a.OptionIDs)
	case QuestionTypeMulti:
		if len(a.OptionIDs) == 0 {
			return fmt.Errorf("question %d: multi choice needs at least one option", q.ID)
		}
		return validateOptions(q, a.OptionIDs)
	}
	return nil
}

func validateOptions(q *Question, optionIDs []uint) error {
	valid := make(map[uint]bool, len(q.Options))
	for _, o := range q.Options {
		valid[o.ID] = true
	}
	seen := make(map[uint]bool, len(optionIDs))
	for _, id := range optionIDs {
		if !valid[id] {
			return fmt.Errorf("question %d: unknown option id %d", q.ID, id)
		}
		if seen[id] {
			return fmt.Errorf("question %d: option %d selected twice", q.ID, id)
		}
		seen[id] = true
	}
	return nil
}
