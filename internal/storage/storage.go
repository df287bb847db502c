// Package storage persists boards to their text form and back. A board
// location is either a plain file path or an s3://bucket/key URL; Open
// picks the implementation from the scheme.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lanes/internal/board"
	"lanes/internal/config"
)

// ErrNotFound indicates no board exists at the store's location yet.
var ErrNotFound = errors.New("board not found")

// Store loads and saves one board document.
type Store interface {
	// Load parses the document at the store's location. It fails with
	// ErrNotFound if nothing is there yet.
	Load(ctx context.Context) (*board.Kanban, error)
	// Save writes the board's rendered document to the store's location.
	Save(ctx context.Context, k *board.Kanban) error
	// Location describes where the board lives, for messages.
	Location() string
}

const s3Scheme = "s3://"

// Open returns the store for a board location. s3://bucket/key locations
// need the S3 settings from the config; everything else is a file path.
func Open(location string, s3cfg config.S3Config) (Store, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		return NewFileStore(location), nil
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(location, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("malformed board location %q: want s3://bucket/key", location)
	}
	return NewS3Store(bucket, key, s3cfg)
}
