package survey

import "context"

// Repository defines data operations for surveys and their responses.
type Repository interface {
	// Create persists the survey with its questions and options
	Create(ctx context.Context, s *Survey) error

	// GetByID retrieves a survey with questions and options loaded
	GetByID(ctx context.Context, id uint) (*Survey, error)

	// Update rewrites the survey definition
	Update(ctx context.Context, s *Survey) error

	// Delete removes the survey and everything beneath it
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated list of surveys
	List(ctx context.Context, page, pageSize int) ([]*Survey, int64, error)
}

// ResponseRepository persists survey submissions.
type ResponseRepository interface {
	Create(ctx context.Context, r *Response) error
	ListBySurveyID(ctx context.Context, surveyID uint, page, pageSize int) ([]*Response, int64, error)
	CountBySurveyID(ctx context.Context, surveyID uint) (int64, error)
}
