package storage

import (
	"context"
	"fmt"
	"os"

	"lanes/internal/board"
)

// FileStore keeps the board in a file on the local filesystem.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the board file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the board file.
func (s *FileStore) Load(_ context.Context) (*board.Kanban, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}
	k, err := board.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return k, nil
}

// Save renders the board and writes it back to the file.
func (s *FileStore) Save(_ context.Context, k *board.Kanban) error {
	if err := os.WriteFile(s.path, []byte(k.Render()), 0o644); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	return nil
}

// Location returns the file path.
func (s *FileStore) Location() string { return s.path }
