package cachehttp

import "errors"

var (
	// ErrInvalidBody is returned to clients whose PUT body does not decode into the value type.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrNotFound is returned for keys that are not resident.
	ErrNotFound = errors.New("key not found")
)
