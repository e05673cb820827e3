package errs

import "errors"

// Cross-layer markers. Each layer keeps its own sentinels and marks them with
// one of these so callers can categorise without importing every layer.
var (
	ErrNotFound                 = errors.New("not found")
	ErrSimulatedProviderFailure = errors.New("simulated provider failure")
	ErrDomainValidationFailed   = errors.New("domain validation failed")
	ErrUnavailable              = errors.New("service unavailable")
)
