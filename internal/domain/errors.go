package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned on shared-secret mismatch for any
// authenticated endpoint. The request is rejected with no state change.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConfiguration marks a missing secret or credential. It is fatal and
// raised before any network call.
var ErrConfiguration = errors.New("configuration error")

// UpstreamError wraps a failed provider call. It is isolated to the one
// competition or match being processed.
type UpstreamError struct {
	Endpoint string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream fetch %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
