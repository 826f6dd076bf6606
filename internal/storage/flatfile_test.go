package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/phonebook/internal/models"
)

func TestFlatFileStore_ReadAllCreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	store := NewFlatFileStore(path, nil)

	contacts, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, contacts)

	info, err := os.Stat(path)
	require.NoError(t, err, "file should be created on first read")
	assert.Zero(t, info.Size())
}

func TestFlatFileStore_AppendThenRead(t *testing.T) {
	t.Parallel()

	for _, codec := range []Codec{BlockCodec{}, JSONLinesCodec{}, YAMLCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			store := NewFlatFileStore(filepath.Join(t.TempDir(), DefaultFileName), codec)

			first := ivanov()
			second := ivanov()
			second.ID = 1
			second.Surname = "Petrov"

			require.NoError(t, store.Append(ctx, first))
			require.NoError(t, store.Append(ctx, second))

			got, err := store.ReadAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, []models.Contact{first, second}, got)
		})
	}
}

func TestFlatFileStore_AppendWritesSentinel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	store := NewFlatFileStore(path, BlockCodec{})
	require.NoError(t, store.Append(context.Background(), ivanov()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Separator))
	assert.Contains(t, string(data), `"org_name": "Не указан",`)
	assert.Contains(t, string(data), `"phone_for_work": "Не указан",`)
	assert.NotContains(t, string(data), "null")
}

func TestFlatFileStore_RewriteAllReplacesContents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewFlatFileStore(filepath.Join(t.TempDir(), DefaultFileName), nil)

	for i := 0; i < 3; i++ {
		c := ivanov()
		c.ID = i
		require.NoError(t, store.Append(ctx, c))
	}

	replacement := ivanov()
	replacement.ID = 9
	replacement.Name = "Pavel"
	require.NoError(t, store.RewriteAll(ctx, []models.Contact{replacement}))

	got, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Contact{replacement}, got)

	require.NoError(t, store.RewriteAll(ctx, nil))
	got, err = store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlatFileStore_RejectedValueLeavesFileIntact(t *testing.T) {
	t.Parallel()

	for _, codec := range []Codec{BlockCodec{}, JSONLinesCodec{}, YAMLCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			path := filepath.Join(t.TempDir(), DefaultFileName)
			store := NewFlatFileStore(path, codec)
			require.NoError(t, store.Append(ctx, ivanov()))
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			bad := ivanov()
			bad.ID = 1
			bad.Name = "Pe\ntr"

			err = store.Append(ctx, bad)
			assert.ErrorIs(t, err, models.ErrValidation)
			var storageErr *StorageError
			assert.False(t, errors.As(err, &storageErr), "a rejected value is not a storage failure")

			err = store.RewriteAll(ctx, []models.Contact{bad})
			assert.ErrorIs(t, err, models.ErrValidation)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)

			got, err := store.ReadAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, []models.Contact{ivanov()}, got)
		})
	}
}

func TestFlatFileStore_CheckValueFollowsCodec(t *testing.T) {
	t.Parallel()

	block := NewFlatFileStore(filepath.Join(t.TempDir(), DefaultFileName), BlockCodec{})
	jsonl := NewFlatFileStore(filepath.Join(t.TempDir(), DefaultFileName), JSONLinesCodec{})

	assert.ErrorIs(t, block.CheckValue(models.FieldOrgName, "ACME,"), models.ErrValidation)
	assert.NoError(t, jsonl.CheckValue(models.FieldOrgName, "ACME,"))
	assert.ErrorIs(t, jsonl.CheckValue(models.FieldOrgName, "AC\nME"), models.ErrValidation)
}

func TestFlatFileStore_ParseErrorCarriesPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{\nbroken line\n}\n"), 0o644))

	_, err := NewFlatFileStore(path, nil).ReadAll(context.Background())

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
	assert.Equal(t, 2, parseErr.Line)
	assert.Contains(t, err.Error(), "missing colon")
}

func TestFlatFileStore_IOErrorsAreStorageErrors(t *testing.T) {
	t.Parallel()

	// A directory in place of the file makes every open fail
	dir := t.TempDir()
	store := NewFlatFileStore(dir, nil)
	ctx := context.Background()

	var storageErr *StorageError

	_, err := store.ReadAll(ctx)
	require.True(t, errors.As(err, &storageErr), "ReadAll: %v", err)
	assert.Equal(t, "read", storageErr.Op)

	err = store.Append(ctx, ivanov())
	require.True(t, errors.As(err, &storageErr), "Append: %v", err)
	assert.Equal(t, "append", storageErr.Op)

	err = store.RewriteAll(ctx, []models.Contact{ivanov()})
	require.True(t, errors.As(err, &storageErr), "RewriteAll: %v", err)
	assert.Equal(t, "rewrite", storageErr.Op)
}

func TestFlatFileStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), DefaultFileName)
	store := NewFlatFileStore(path, nil)

	_, err := store.ReadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Append(ctx, ivanov()), context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be created for a canceled call")
}
