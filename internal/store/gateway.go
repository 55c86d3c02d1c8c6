package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Gateway loads and saves the Store.
type Gateway interface {
	Load() (*Store, error)
	Save(s *Store) error
}

// FileGateway persists the Store as an indented JSON document.
type FileGateway struct {
	path string
}

var _ Gateway = (*FileGateway)(nil)

// NewFileGateway returns a gateway backed by the file at path.
func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

// Path returns the backing file path.
func (g *FileGateway) Path() string {
	return g.path
}

// Load reads the Store from the backing file.
//
// A missing file is created empty. Contents that cannot be decoded (including
// an empty file) yield an empty Store rather than an error, so a corrupted
// backing file never locks the user out.
func (g *FileGateway) Load() (*Store, error) {
	data, err := os.ReadFile(g.path) //nolint:gosec // backing file path comes from config
	if errors.Is(err, os.ErrNotExist) {
		if err := g.create(); err != nil {
			return nil, err
		}
		return New(), nil
	}
	if err != nil {
		return nil, &StorageIOError{Op: "read", Path: g.path, Err: err}
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return New(), nil
	}
	if s.Recordings == nil {
		s.Recordings = map[string][]string{}
	}
	return &s, nil
}

// Save replaces the backing file with the encoded Store.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (g *FileGateway) Save(s *Store) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return &SerializationError{Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0750); err != nil {
		return &StorageIOError{Op: "create directory", Path: filepath.Dir(g.path), Err: err}
	}

	tmpFile := g.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return &StorageIOError{Op: "write", Path: tmpFile, Err: err}
	}

	if err := os.Rename(tmpFile, g.path); err != nil {
		_ = os.Remove(tmpFile)
		return &StorageIOError{Op: "rename", Path: g.path, Err: err}
	}

	return nil
}

func (g *FileGateway) create() error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0750); err != nil {
		return &StorageIOError{Op: "create directory", Path: filepath.Dir(g.path), Err: err}
	}
	f, err := os.OpenFile(g.path, os.O_RDWR|os.O_CREATE, 0600) //nolint:gosec // backing file path comes from config
	if err != nil {
		return &StorageIOError{Op: "create", Path: g.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StorageIOError{Op: "create", Path: g.path, Err: err}
	}
	return nil
}
