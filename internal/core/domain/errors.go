package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates ingest was called with blank text.
	// It is returned before annotation runs and no asset is created.
	ErrEmptyInput = errors.New("empty input")

	// ErrStoreUnavailable indicates the embedded store could not complete a
	// transaction (disk, lock or connection failure). It is never retried.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrMalformedFacet indicates a stored facet blob is not valid JSON.
	ErrMalformedFacet = errors.New("malformed facet")

	// ErrNoActiveSession indicates a metrics operation needs a running session.
	ErrNoActiveSession = errors.New("no active metrics session")

	// ErrUnknownStage indicates an annotator stage name is not registered.
	ErrUnknownStage = errors.New("unknown annotator stage")
)

// MalformedFacetError describes a stored facet that failed to parse.
// Readers recover from it by showing Raw instead of failing the whole read.
type MalformedFacetError struct {
	Facet string
	Raw   string
	Err   error
}

func (e *MalformedFacetError) Error() string {
	return fmt.Sprintf("facet %s: %v", e.Facet, e.Err)
}

func (e *MalformedFacetError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedFacet.
func (e *MalformedFacetError) Is(target error) bool {
	return target == ErrMalformedFacet
}
