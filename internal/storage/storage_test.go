package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanes/internal/board"
	"lanes/internal/config"
)

func TestOpenSelectsFileStore(t *testing.T) {
	s, err := Open("boards/work.md", config.S3Config{})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	assert.Equal(t, "boards/work.md", s.Location())
}

func TestOpenSelectsS3Store(t *testing.T) {
	s, err := Open("s3://boards/work.md", config.S3Config{Region: "us-east-1"})
	require.NoError(t, err)
	assert.IsType(t, &S3Store{}, s)
	assert.Equal(t, "s3://boards/work.md", s.Location())
}

func TestOpenRejectsMalformedS3Location(t *testing.T) {
	_, err := Open("s3://bucket-only", config.S3Config{})
	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.md")
	store := NewFileStore(path)

	k := board.New("To Do", "Done")
	card, err := board.NewCardBuilder().Column("To Do").Title("Write tests").Build()
	require.NoError(t, err)
	require.NoError(t, k.AddCard(card))

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, k))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, k.Columns(), loaded.Columns())
	assert.Equal(t, k.Cards(), loaded.Cards())
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.md"))
	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.md")
	require.NoError(t, os.WriteFile(path, []byte("- [ ] orphan card\n"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	require.ErrorIs(t, err, board.ErrCardBeforeColumn)
}
