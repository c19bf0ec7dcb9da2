package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darnYOURsocks/Ripplewin/internal/core/domain"
)

func TestDictionaryService_EnsureSeeded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	n, err := env.dictionary.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = env.dictionary.EnsureSeeded(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	terms, err := env.dictionary.List(ctx)
	require.NoError(t, err)
	require.Len(t, terms, 6)

	names := make([]string, 0, len(terms))
	for _, term := range terms {
		names = append(names, term.Term)
	}
	assert.Equal(t, []string{
		"impurity", "solvent wash", "chelation", "buffer", "radical scavenger", "symbolic closure",
	}, names)
}

func TestDictionaryService_Vocabulary(t *testing.T) {
	env := newTestEnv(t)

	vocab := env.dictionary.Vocabulary()
	assert.Equal(t, "v1", vocab.Version)
	assert.NotEmpty(t, vocab.Groups)
}

type errDictionaryStore struct{}

func (errDictionaryStore) List(context.Context) ([]domain.DomainTerm, error) {
	return nil, errors.New("boom")
}
func (errDictionaryStore) Count(context.Context) (int, error) { return 0, errors.New("boom") }
func (errDictionaryStore) Seed(context.Context, []domain.DomainTerm) (int, error) {
	return 0, domain.ErrStoreUnavailable
}

func TestDictionaryService_Errors(t *testing.T) {
	svc := NewDictionaryService(errDictionaryStore{}, domain.Vocabulary{})

	_, err := svc.EnsureSeeded(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.List(context.Background())
	assert.Error(t, err)
}
