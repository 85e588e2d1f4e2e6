package satfire

import (
	"errors"
)

// Error kinds per the error handling design: config/IO/store failures are
// ordinary values a caller can check with errors.Is; invariant violations
// are programmer errors and panic instead of returning.
var (
	ErrConfigMissing = errors.New("satfire: required configuration missing")
	ErrIO            = errors.New("satfire: filesystem or file-open failure")
	ErrStoreQuery    = errors.New("satfire: store query failed")
	ErrStoreInsert   = errors.New("satfire: store insert failed")
)
