package nobelapi

import (
	"errors"
	"fmt"
)

// ErrFetchFailure marks transport-level failures reaching the upstream API
// (DNS, refused connection, timeout, truncated body).
var ErrFetchFailure = errors.New("nobelapi: fetch failed")

// UpstreamError reports a non-2xx status or an unparsable body from the upstream API.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nobelapi: %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("nobelapi: %s: unexpected status %d", e.Endpoint, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstreamError reports whether err carries an *UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
