package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

func strPtr(s string) *string { return &s }

func TestNew_RequiresPath(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document path is required")
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	store, err := New(Config{Path: path})
	require.NoError(t, err)
	ctx := context.Background()

	seed := []quizcontent.Category{
		{
			Title:        "Fire",
			RiveFile:     strPtr("fire.riv"),
			StateMachine: strPtr("Blaze"),
			Locked:       true,
			Questions:    []string{"Q1", "Q2"},
		},
		{Title: "Water", Questions: []string{}},
	}

	require.NoError(t, store.Save(ctx, seed))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, loaded)
}

func TestStore_SaveLoadSaveIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	store, err := New(Config{Path: path})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []quizcontent.Category{
		{Title: "Fire", RiveFile: strPtr("fire.riv"), Questions: []string{"Q1"}},
	}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_LoadMissingDocument(t *testing.T) {
	store, err := New(Config{Path: filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)

	var storeErr *quizcontent.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, quizcontent.StoreOpLoad, storeErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_LoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := New(Config{Path: path})
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)

	var storeErr *quizcontent.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, quizcontent.StoreOpLoad, storeErr.Op)
}

func TestStore_SaveOverwritesInFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	store, err := New(Config{Path: path})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []quizcontent.Category{
		{Title: "Fire", Questions: []string{"Q1"}},
		{Title: "Water", Questions: []string{"Q2"}},
	}))
	require.NoError(t, store.Save(ctx, []quizcontent.Category{
		{Title: "Earth", Questions: []string{"Q3"}},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Earth", loaded[0].Title)
}

func TestStore_SaveNilCollectionWritesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	store, err := New(Config{Path: path})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_SaveFailure(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "categories.json")
	store, err := New(Config{Path: path})
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	err = store.Save(context.Background(), []quizcontent.Category{{Title: "Fire"}})
	require.Error(t, err)

	var storeErr *quizcontent.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, quizcontent.StoreOpSave, storeErr.Op)
}
