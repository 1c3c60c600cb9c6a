package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocalStore saves uploaded images to a directory on disk. Filenames are
// generated, never taken from the client.
type LocalStore struct {
	dir      string
	maxBytes int64
}

// NewLocalStore creates the uploads directory if needed.
func NewLocalStore(dir string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a unique name derived from the form
// field, keeping the original extension. Only image extensions are accepted
// and files over the size cap are rejected.
func (s *LocalStore) Save(fieldName string, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", apperrors.NewValidationError("images only (jpeg, jpg, png, gif, webp)", nil)
	}
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", apperrors.NewValidationError("file too large", map[string]any{"max_bytes": s.maxBytes})
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("%s-%s%s", fieldName, uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return filename, nil
}

// Delete removes a previously saved file. Default placeholder names and
// already-missing files are ignored so content deletion stays idempotent.
func (s *LocalStore) Delete(filename string, defaults ...string) error {
	if filename == "" {
		return nil
	}
	for _, def := range defaults {
		if filename == def {
			return nil
		}
	}
	// Generated names never contain separators; reject anything else.
	if filepath.Base(filename) != filename {
		return apperrors.NewValidationError("invalid filename", nil)
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
