package cache

import "errors"

// ErrInvalidConfiguration is returned by New when the requested capacity is not positive.
var ErrInvalidConfiguration = errors.New("cache: invalid configuration")
