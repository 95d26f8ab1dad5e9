package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"haitch/internal/shared/config"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

// allowedMimeTypes is the upload whitelist.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain":               true,
	"video/mp4":                true,
	"application/zip":          true,
	"application/octet-stream": true,
}

// StoredFile describes a file written to the uploads directory.
type StoredFile struct {
	FileName   string
	StoredName string
	Path       string
	Size       int64
	MimeType   string
}

// LocalStore writes uploads to a directory with collision-free names.
type LocalStore struct {
	dir      string
	maxBytes int64
	logger   logger.Interface
}

func NewLocalStore(cfg *config.UploadConfig, log logger.Interface) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &LocalStore{
		dir:      cfg.Dir,
		maxBytes: int64(cfg.MaxSizeMB) * 1024 * 1024,
		logger:   log,
	}, nil
}

// Save validates and writes one multipart file. The stored name combines a
// timestamp and a random id so concurrent uploads never collide.
func (s *LocalStore) Save(header *multipart.FileHeader) (*StoredFile, error) {
	if header.Size > s.maxBytes {
		return nil, errors.NewValidationError(
			fmt.Sprintf("file %s exceeds the %d MB limit", header.Filename, s.maxBytes/(1024*1024)))
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType != "" {
		// Parameters like charset don't affect the whitelist check.
		if idx := strings.Index(mimeType, ";"); idx >= 0 {
			mimeType = strings.TrimSpace(mimeType[:idx])
		}
	}
	if !allowedMimeTypes[mimeType] {
		return nil, errors.NewValidationError(
			fmt.Sprintf("file type %s is not allowed", mimeType))
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	storedName := fmt.Sprintf("%s_%s%s",
		time.Now().Format("20060102150405"),
		uuid.NewString(),
		filepath.Ext(header.Filename))
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write stored file: %w", err)
	}

	s.logger.Infow("file stored", "file_name", header.Filename, "stored_name", storedName, "size", size)

	return &StoredFile{
		FileName:   header.Filename,
		StoredName: storedName,
		Path:       path,
		Size:       size,
		MimeType:   mimeType,
	}, nil
}

// SaveBytes writes raw content under the given logical name.
func (s *LocalStore) SaveBytes(fileName string, content []byte) (*StoredFile, error) {
	if int64(len(content)) > s.maxBytes {
		return nil, errors.NewValidationError(
			fmt.Sprintf("file %s exceeds the %d MB limit", fileName, s.maxBytes/(1024*1024)))
	}

	storedName := fmt.Sprintf("%s_%s%s",
		time.Now().Format("20060102150405"),
		uuid.NewString(),
		filepath.Ext(fileName))
	path := filepath.Join(s.dir, storedName)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write stored file: %w", err)
	}

	return &StoredFile{
		FileName:   fileName,
		StoredName: storedName,
		Path:       path,
		Size:       int64(len(content)),
		MimeType:   "application/octet-stream",
	}, nil
}

// Open returns a reader over a stored file.
func (s *LocalStore) Open(path string) (*os.File, error) {
	cleaned := filepath.Clean(path)
	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload dir: %w", err)
	}
	absPath, err := filepath.Abs(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file path: %w", err)
	}
	// Stored paths must stay inside the uploads directory.
	if !strings.HasPrefix(absPath, absDir+string(os.PathSeparator)) {
		return nil, errors.NewValidationError("invalid file path")
	}

	return os.Open(absPath)
}

// Remove deletes a stored file; a missing file is not an error.
func (s *LocalStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stored file: %w", err)
	}
	return nil
}
