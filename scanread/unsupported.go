package scanread

import "fmt"

// Unsupported is the Reader wired into cmd/satfire-ingest by default. The
// raw NetCDF/GOES-R decode is explicitly out of scope for this module (see
// spec.md §1): it is an external collaborator specified only at the
// interface level. Production deployments inject their own Reader
// implementation; Unsupported exists so the CLI binary still links and
// fails loudly, rather than silently, if no real decoder is wired in.
type Unsupported struct{}

// Read always returns ErrUnsupported.
func (Unsupported) Read(path string) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s", ErrUnsupported, path)
}
