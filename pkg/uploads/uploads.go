package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileType        = errors.New("file type not allowed")
	ErrInvalidFilename = errors.New("invalid filename")
)

// AllowedFile reports whether the filename carries an allowed image extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Store saves files into a single directory under random unique names.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the uploaded content under a fresh "<uuid-hex><ext>" name and
// returns the stored filename.
func (s *Store) Save(originalFilename string, r io.Reader) (string, error) {
	if !AllowedFile(originalFilename) {
		return "", ErrFileType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return filename, nil
}

// Path resolves a stored filename to a full path, rejecting traversal.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", ErrInvalidFilename
	}

	return filepath.Join(s.dir, filename), nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *Store) Delete(filename string) error {
	if filename == "" {
		return nil
	}

	path, err := s.Path(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
