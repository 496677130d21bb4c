package sim

import "errors"

// ErrInvalidInput reports simulation parameters that are rejected before any
// run starts: an empty evaluation log (N = 0) or a non-positive run count.
var ErrInvalidInput = errors.New("invalid simulation input")
