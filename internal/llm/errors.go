package llm

import "errors"

var (
	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("text generation service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("text generation request timed out")

	// ErrEmptyResponse indicates the service returned no usable text.
	ErrEmptyResponse = errors.New("empty text generation response")

	// ErrUpstream indicates the service rejected or failed the request.
	ErrUpstream = errors.New("text generation request failed")
)
