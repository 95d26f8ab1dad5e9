package usecases

import "context"

// KnowledgeStore pushes content into the external knowledge base and
// removes documents from it.
type KnowledgeStore interface {
	UploadDocument(ctx context.Context, fileName string, content []byte) (string, error)
	DeleteDocument(ctx context.Context, fileID string) error
}

// FileRemover removes stored document files from disk.
type FileRemover interface {
	Remove(path string) error
}
