package scanread

import "errors"

// ErrUnknownPath is returned by Fake.Read for a path no test registered.
var ErrUnknownPath = errors.New("scanread: unknown path")

// ErrUnsupported is returned by Unsupported.Read.
var ErrUnsupported = errors.New("scanread: no scan decoder configured")
