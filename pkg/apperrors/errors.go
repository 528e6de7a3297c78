package apperrors

import "errors"

var (
	// ErrSourceUnavailable covers network failures, timeouts, and non-2xx
	// responses from any upstream. Callers degrade to fallback or
	// estimated data instead of surfacing this to the end consumer.
	ErrSourceUnavailable = errors.New("upstream source unavailable")

	// ErrMalformedResponse is a 2xx response whose body could not be
	// parsed into the expected shape. Treated the same as unavailable.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrAllMirrorsFailed is returned by the fallback resolver when every
	// configured mirror for a source has been tried and failed.
	ErrAllMirrorsFailed = errors.New("all mirrors failed")

	// ErrAPIKeyMissing indicates a source that requires a key was called
	// without one configured.
	ErrAPIKeyMissing = errors.New("api key not configured")

	ErrNoMatch      = errors.New("no matching legislator")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)
