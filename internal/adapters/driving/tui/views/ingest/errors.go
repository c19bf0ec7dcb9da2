package ingest

import "errors"

// ErrNoAssetService indicates that no asset service was provided.
var ErrNoAssetService = errors.New("asset service is required")
