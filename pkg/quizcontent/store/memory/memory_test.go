package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

func strPtr(s string) *string { return &s }

func TestStore_EmptyByDefault(t *testing.T) {
	store := New()

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_SaveLoad(t *testing.T) {
	store := New()
	ctx := context.Background()

	seed := []quizcontent.Category{
		{Title: "Fire", RiveFile: strPtr("fire.riv"), Questions: []string{"Q1"}},
	}
	require.NoError(t, store.Save(ctx, seed))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, loaded)
}

func TestStore_CopiesIsolateCallers(t *testing.T) {
	store := New()
	ctx := context.Background()

	seed := []quizcontent.Category{
		{Title: "Fire", RiveFile: strPtr("fire.riv"), Questions: []string{"Q1"}},
	}
	require.NoError(t, store.Save(ctx, seed))

	// Mutating the saved input must not reach the stored document.
	seed[0].Questions[0] = "tampered"
	*seed[0].RiveFile = "tampered.riv"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q1", loaded[0].Questions[0])
	assert.Equal(t, "fire.riv", *loaded[0].RiveFile)

	// Mutating a loaded copy must not reach the stored document either.
	loaded[0].Questions[0] = "tampered"

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q1", reloaded[0].Questions[0])
}

func TestStore_UnseededLoadFails(t *testing.T) {
	store := NewUnseeded()
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.Error(t, err)

	var storeErr *quizcontent.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, quizcontent.StoreOpLoad, storeErr.Op)
	assert.ErrorIs(t, err, quizcontent.ErrDocumentMissing)

	// First save seeds the document.
	require.NoError(t, store.Save(ctx, nil))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
