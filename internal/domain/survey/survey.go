package survey

import (
	"fmt"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
)

const (
	QuestionTypeSingle = "single"
	QuestionTypeMulti  = "multi"
	QuestionTypeText   = "text"
)

// Survey is a survey definition with its questions and options.
type Survey struct {
	id          uint
	title       string
	description string
	status      string
	questions   []*Question
	createdAt   time.Time
	updatedAt   time.Time
}

// Question is one question inside a survey.
type Question struct {
	ID       uint
	Text     string
	Type     string
	Required bool
	Sort     int
	Options  []*Option
}

// Option is a selectable option of a choice question.
type Option struct {
	ID   uint
	Text string
	Sort int
}

func NewSurvey(title, description string, questions []*Question) (*Survey, error) {
	if title == "" {
		return nil, fmt.Errorf("survey title is required")
	}
	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	now := time.Now()
	return &Survey{
		title:       title,
		description: description,
		status:      StatusDraft,
		questions:   questions,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSurvey(id uint, title, description, status string, questions []*Question, createdAt, updatedAt time.Time) (*Survey, error) {
	if id == 0 {
		return nil, fmt.Errorf("survey ID cannot be zero")
	}

	return &Survey{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		questions:   questions,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// SetID assigns the database-generated ID after persistence
func (s *Survey) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("survey ID already set")
	}
	if id == 0 {
		return fmt.Errorf("survey ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Survey) ID() uint               { return s.id }
func (s *Survey) Title() string          { return s.title }
func (s *Survey) Description() string    { return s.description }
func (s *Survey) Status() string         { return s.status }
func (s *Survey) Questions() []*Question { return s.questions }
func (s *Survey) CreatedAt() time.Time   { return s.createdAt }
func (s *Survey) UpdatedAt() time.Time   { return s.updatedAt }

// Update replaces the survey definition. Existing responses keep referencing
// old question ids, so updates are only allowed on drafts.
func (s *Survey) Update(title, description string, questions []*Question) error {
	if s.status != StatusDraft {
		return fmt.Errorf("only draft surveys can be edited")
	}
	if title == "" {
		return fmt.Errorf("survey title is required")
	}
	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	s.title = title
	s.description = description
	s.questions = questions
	s.updatedAt = time.Now()
	return nil
}

func (s *Survey) Publish() error {
	if s.status != StatusDraft {
		return fmt.Errorf("survey is not a draft")
	}
	if len(s.questions) == 0 {
		return fmt.Errorf("cannot publish a survey with no questions")
	}
	s.status = StatusPublished
	s.updatedAt = time.Now()
	return nil
}

func (s *Survey) Close() error {
	if s.status != StatusPublished {
		return fmt.Errorf("survey is not published")
	}
	s.status = StatusClosed
	s.updatedAt = time.Now()
	return nil
}

// FindQuestion returns the question with the given id, or nil.
func (s *Survey) FindQuestion(id uint) *Question {
	for _, q := range s.questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func validateQuestion(q *Question) error {
	if q == nil {
		return fmt.Errorf("question is nil")
	}
	if q.Text == "" {
		return fmt.Errorf("question text is required")
	}
	switch q.Type {
	case QuestionTypeSingle, QuestionTypeMulti:
		if len(q.Options) < 2 {
			return fmt.Errorf("choice questions need at least two options")
		}
	case QuestionTypeText:
		if len(q.Options) != 0 {
			return fmt.Errorf("text questions cannot carry options")
		}
	default:
		return fmt.Errorf("invalid question type: %s", q.Type)
	}
	return nil
}
