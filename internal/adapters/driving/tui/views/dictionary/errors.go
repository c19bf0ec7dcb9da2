package dictionary

import "errors"

// ErrNoDictionaryService indicates that no dictionary service was provided.
var ErrNoDictionaryService = errors.New("dictionary service is required")
