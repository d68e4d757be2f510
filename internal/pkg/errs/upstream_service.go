package errs

import (
	"errors"
	"fmt"
)

// ErrUpstreamService is the sentinel error for failures of external
// collaborators (generative text service, transactional messaging provider).
var ErrUpstreamService = errors.New("upstream service failed")

// UpstreamServiceError describes a failure of an external service call.
// Transient distinguishes retryable failures (timeouts, rate limits, 5xx)
// from permanent configuration failures (missing or rejected credential),
// which callers must not retry.
type UpstreamServiceError struct {
	Service   string
	Transient bool
	Cause     error
}

// NewUpstreamServiceError creates an UpstreamServiceError for the named service.
func NewUpstreamServiceError(service string, transient bool, cause error) *UpstreamServiceError {
	return &UpstreamServiceError{
		Service:   service,
		Transient: transient,
		Cause:     cause,
	}
}

func (e *UpstreamServiceError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (%s) (cause: %s)", ErrUpstreamService, e.Service, kind, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s (%s)", ErrUpstreamService, e.Service, kind))
}

func (e *UpstreamServiceError) Unwrap() error {
	return ErrUpstreamService
}

// IsTransientUpstream reports whether err is an upstream failure that the
// caller may retry.
func IsTransientUpstream(err error) bool {
	var upstream *UpstreamServiceError
	if errors.As(err, &upstream) {
		return upstream.Transient
	}
	return false
}
