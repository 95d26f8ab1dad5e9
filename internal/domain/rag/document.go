package rag

import (
	"fmt"
	"time"
)

// Document is a raw file uploaded straight to the knowledge base.
type Document struct {
	id        uint
	name      string
	path      string
	size      int64
	fileID    *string
	status    int
	deleted   bool
	createdAt time.Time
	updatedAt *time.Time
}

func NewDocument(name, path string, size int64) (*Document, error) {
	if name == "" || path == "" {
		return nil, fmt.Errorf("document name and path are required")
	}

	return &Document{
		name:      name,
		path:      path,
		size:      size,
		status:    StatusPending,
		createdAt: time.Now(),
	}, nil
}

func ReconstructDocument(id uint, name, path string, size int64, fileID *string, status int, deleted bool, createdAt time.Time, updatedAt *time.Time) (*Document, error) {
	if id == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}

	return &Document{
		id:        id,
		name:      name,
		path:      path,
		size:      size,
		fileID:    fileID,
		status:    status,
		deleted:   deleted,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// SetID assigns the database-generated ID after persistence
func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Document) ID() uint              { return d.id }
func (d *Document) Name() string          { return d.name }
func (d *Document) Path() string          { return d.path }
func (d *Document) Size() int64           { return d.size }
func (d *Document) FileID() *string       { return d.fileID }
func (d *Document) Status() int           { return d.status }
func (d *Document) IsDeleted() bool       { return d.deleted }
func (d *Document) CreatedAt() time.Time  { return d.createdAt }
func (d *Document) UpdatedAt() *time.Time { return d.updatedAt }

func (d *Document) MarkProcessed(fileID string, at time.Time) {
	d.fileID = &fileID
	d.status = StatusProcessed
	d.updatedAt = &at
}

func (d *Document) MarkDeleted() {
	d.deleted = true
	now := time.Now()
	d.updatedAt = &now
}
