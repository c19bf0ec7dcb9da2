package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrEmptyInput", ErrEmptyInput},
		{"ErrStoreUnavailable", ErrStoreUnavailable},
		{"ErrMalformedFacet", ErrMalformedFacet},
		{"ErrNoActiveSession", ErrNoActiveSession},
		{"ErrUnknownStage", ErrUnknownStage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrStoreUnavailable_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating asset: %w: %v", ErrStoreUnavailable, errors.New("database is locked"))

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.Contains(t, err.Error(), "database is locked")
}

func TestMalformedFacetError(t *testing.T) {
	var target []string
	err := FacetBlob{Name: FacetKeywords, Raw: "{not json"}.Decode(&target)
	require.Error(t, err)

	var mfe *MalformedFacetError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, FacetKeywords, mfe.Facet)
	assert.Equal(t, "{not json", mfe.Raw)
	assert.True(t, errors.Is(err, ErrMalformedFacet))

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
	assert.Contains(t, err.Error(), "facet keywords")
}
