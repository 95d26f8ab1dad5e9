package rag

import "context"

// QuestionRepository defines data operations for questions.
// Delete is a soft delete; reads exclude soft-deleted rows.
type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	GetByID(ctx context.Context, id uint) (*Question, error)
	Update(ctx context.Context, q *Question) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, pageSize int) ([]*Question, int64, error)

	// ListUploadable retrieves pending, answered, non-deleted questions.
	ListUploadable(ctx context.Context, limit int) ([]*Question, error)
}

// DocumentRepository defines data operations for documents.
// Delete is a soft delete; reads exclude soft-deleted rows.
type DocumentRepository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id uint) (*Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, pageSize int) ([]*Document, int64, error)
}
