package ticket

import (
	"fmt"
	"time"
)

// Attachment is a file stored on disk and linked to one or more tickets.
type Attachment struct {
	id         uint
	fileName   string
	storedName string
	path       string
	size       int64
	mimeType   string
	createdAt  time.Time
}

func NewAttachment(fileName, storedName, path string, size int64, mimeType string) (*Attachment, error) {
	if fileName == "" || storedName == "" || path == "" {
		return nil, fmt.Errorf("file name, stored name and path are required")
	}

	return &Attachment{
		fileName:   fileName,
		storedName: storedName,
		path:       path,
		size:       size,
		mimeType:   mimeType,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(id uint, fileName, storedName, path string, size int64, mimeType string, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}

	return &Attachment{
		id:         id,
		fileName:   fileName,
		storedName: storedName,
		path:       path,
		size:       size,
		mimeType:   mimeType,
		createdAt:  createdAt,
	}, nil
}

// SetID assigns the database-generated ID after persistence
func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) StoredName() string   { return a.storedName }
func (a *Attachment) Path() string         { return a.path }
func (a *Attachment) Size() int64          { return a.size }
func (a *Attachment) MimeType() string     { return a.mimeType }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }
