package models

import (
	"time"

	"haitch/internal/shared/constants"
)

// QuestionModel represents a curated Q&A row destined for the knowledge base.
// Status moves from pending (0) to processed (1) once the scheduler has
// uploaded the row.
type QuestionModel struct {
	ID        uint    `gorm:"primarykey"`
	Question  string  `gorm:"type:text;not null"`
	Answer    string  `gorm:"type:text"`
	Status    int     `gorm:"not null;default:0;index:idx_questions_status"`
	IsDelete  int     `gorm:"not null;default:0;index:idx_questions_is_delete"`
	FileID    *string `gorm:"size:128"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (QuestionModel) TableName() string {
	return constants.TableQuestions
}

// DocumentModel represents a raw document uploaded to the knowledge base.
type DocumentModel struct {
	ID        uint    `gorm:"primarykey"`
	Name      string  `gorm:"not null;size:255"`
	Path      string  `gorm:"not null;size:500"`
	Size      int64   `gorm:"not null"`
	FileID    *string `gorm:"size:128"`
	Status    int     `gorm:"not null;default:0;index:idx_documents_status"`
	IsDelete  int     `gorm:"not null;default:0;index:idx_documents_is_delete"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}
