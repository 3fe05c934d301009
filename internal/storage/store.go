// Package storage manages the upload and output directories: UUID file
// naming, name resolution with traversal rejection, atomic writes, and the
// retention sweep that removes expired files.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName = errors.New("invalid file name")
)

// Store is a flat directory of served files. All access goes through names
// validated by Path, callers never hand the store a path of their own.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save stores content under a freshly generated UUID name carrying the
// supplied extension, and returns the generated name.
func (s *Store) Save(ext string, content []byte) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	name := fmt.Sprintf("%s.%s", uuid.New(), ext)
	if err := s.WriteAtomic(name, content); err != nil {
		return "", err
	}
	return name, nil
}

// Path resolves a stored file name to its path inside the store. Names
// containing separators or traversal elements are rejected.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

// WriteAtomic writes content under name via a temporary file and rename, so
// a failed write leaves no partial file in the served location.
func (s *Store) WriteAtomic(name string, content []byte) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err = tmp.Write(content); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func (s *Store) Exists(name string) bool {
	path, err := s.Path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
