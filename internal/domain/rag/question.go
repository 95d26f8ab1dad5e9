package rag

import (
	"fmt"
	"time"
)

const (
	StatusPending   = 0
	StatusProcessed = 1
)

// Question is a curated Q&A row. Rows with a non-empty answer and pending
// status are picked up by the background uploader and pushed to the
// knowledge base.
type Question struct {
	id        uint
	question  string
	answer    string
	status    int
	deleted   bool
	fileID    *string
	createdAt time.Time
	updatedAt *time.Time
}

func NewQuestion(question, answer string) (*Question, error) {
	if question == "" {
		return nil, fmt.Errorf("question text is required")
	}

	return &Question{
		question:  question,
		answer:    answer,
		status:    StatusPending,
		createdAt: time.Now(),
	}, nil
}

func ReconstructQuestion(id uint, question, answer string, status int, deleted bool, fileID *string, createdAt time.Time, updatedAt *time.Time) (*Question, error) {
	if id == 0 {
		return nil, fmt.Errorf("question ID cannot be zero")
	}

	return &Question{
		id:        id,
		question:  question,
		answer:    answer,
		status:    status,
		deleted:   deleted,
		fileID:    fileID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// SetID assigns the database-generated ID after persistence
func (q *Question) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("question ID already set")
	}
	if id == 0 {
		return fmt.Errorf("question ID cannot be zero")
	}
	q.id = id
	return nil
}

func (q *Question) ID() uint              { return q.id }
func (q *Question) Question() string      { return q.question }
func (q *Question) Answer() string        { return q.answer }
func (q *Question) Status() int           { return q.status }
func (q *Question) IsDeleted() bool       { return q.deleted }
func (q *Question) FileID() *string       { return q.fileID }
func (q *Question) CreatedAt() time.Time  { return q.createdAt }
func (q *Question) UpdatedAt() *time.Time { return q.updatedAt }

// Update edits the row and resets status so the uploader picks it up again.
func (q *Question) Update(question, answer string) error {
	if question == "" {
		return fmt.Errorf("question text is required")
	}
	q.question = question
	q.answer = answer
	q.status = StatusPending
	now := time.Now()
	q.updatedAt = &now
	return nil
}

// MarkProcessed records a successful knowledge-base upload.
func (q *Question) MarkProcessed(fileID string, at time.Time) {
	q.fileID = &fileID
	q.status = StatusProcessed
	q.updatedAt = &at
}

// MarkDeleted soft-deletes the row.
func (q *Question) MarkDeleted() {
	q.deleted = true
	now := time.Now()
	q.updatedAt = &now
}

// IsUploadable reports whether the uploader should process this row.
func (q *Question) IsUploadable() bool {
	return q.status == StatusPending && !q.deleted && q.answer != ""
}

// KnowledgeText serializes the row into the plain-text form pushed to the
// knowledge base.
func (q *Question) KnowledgeText() string {
	return fmt.Sprintf("问题: %s\n答案: %s\n", q.question, q.answer)
}
