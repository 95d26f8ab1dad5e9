package usecases

import "context"

// KnowledgeStore pushes serialized rows into the external knowledge base
// and removes them again.
type KnowledgeStore interface {
	UploadDocument(ctx context.Context, fileName string, content []byte) (string, error)
	DeleteDocument(ctx context.Context, fileID string) error
}

// FileRemover removes stored attachment files from disk.
type FileRemover interface {
	Remove(path string) error
}

// AttachmentInput describes a file already written to disk by the upload
// layer.
type AttachmentInput struct {
	FileName   string
	StoredName string
	Path       string
	Size       int64
	MimeType   string
}
