package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is the URL prefix under which uploaded files are served.
const PublicPrefix = "/uploads/"

// UploadStore persists uploaded files on the local filesystem and
// addresses them by their public URL path.
type UploadStore struct {
	dir string
	now func() time.Time
}

// NewUploadStore creates the upload directory if needed and returns a
// store rooted there.
func NewUploadStore(dir string) (*UploadStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadStore{dir: dir, now: time.Now}, nil
}

// Dir returns the filesystem directory backing the store.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes the file under a timestamped name derived from the
// original filename and returns its public path.
func (s *UploadStore) Save(file io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeFilename(originalName))

	target, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = target.Close() }()

	if _, err := io.Copy(target, file); err != nil {
		_ = os.Remove(target.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return PublicPrefix + name, nil
}

// Remove deletes the file behind a public path. A path outside the
// store or an already removed file is not an error.
func (s *UploadStore) Remove(publicPath string) error {
	name, ok := strings.CutPrefix(publicPath, PublicPrefix)
	if !ok || name == "" {
		return nil
	}

	// filepath.Base strips any traversal segments smuggled into the path.
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

// sanitizeFilename reduces an uploaded filename to a safe basename.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "upload"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
