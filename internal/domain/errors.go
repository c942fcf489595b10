package domain

import "errors"

// ErrNotFound reports that a singular resource (personal info, or an
// experience looked up by id) has zero rows. The HTTP layer maps it to a 404
// envelope; the aggregator treats missing personal info as a nil record
// instead of a failure.
var ErrNotFound = errors.New("not found")
