package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/annotator/vocabulary"
	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

func TestDictionaryStore_Seed(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	vocab, err := vocabulary.Default()
	require.NoError(t, err)

	n, err := store.DictionaryStore().Seed(ctx, vocab.Terms)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	// Seeding again is a no-op.
	n, err = store.DictionaryStore().Seed(ctx, vocab.Terms)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := store.DictionaryStore().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	terms, err := store.DictionaryStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 6)
	assert.Equal(t, "impurity", terms[0].Term)
	assert.Equal(t, "chemistry", terms[0].Domain)
	assert.Equal(t, "symbolic closure", terms[5].Term)
	assert.Equal(t, "obviology", terms[5].Domain)
	assert.Equal(t, "v1", terms[5].Version)
	assert.NotZero(t, terms[0].ID)
}

func TestDictionaryStore_EmptyList(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	terms, err := store.DictionaryStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
}

func TestDictionaryStore_Seed_DefaultsVersion(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.DictionaryStore().Seed(ctx, []domain.DomainTerm{{Term: "buffer", Domain: "chemistry"}})
	require.NoError(t, err)

	terms, err := store.DictionaryStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "v1", terms[0].Version)
}
