package generation

import "errors"

var (
	// ErrTransport indicates a network-level failure talking to the
	// generation service, including non-2xx responses.
	ErrTransport = errors.New("generation: transport failure")
	// ErrMalformedResponse indicates a response body missing the fields the
	// client depends on, or carrying them with the wrong shape.
	ErrMalformedResponse = errors.New("generation: malformed response")
	// ErrNoResult is returned when a download is requested before a
	// generation has produced a result.
	ErrNoResult = errors.New("generation: no result to download")
)
