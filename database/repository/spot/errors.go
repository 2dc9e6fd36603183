package spotRepo

import "errors"

// ErrNotFound is returned when no spot matches the lookup.
var ErrNotFound = errors.New("spot not found")
