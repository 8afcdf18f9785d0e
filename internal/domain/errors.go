package domain

import "errors"

// Sentinel errors for classifying backend and processing failures.
// The client and the series processor wrap these so the CLI and the
// dashboard can react to error categories uniformly.
//
//	return fmt.Errorf("failed to fetch bandwidth: %w", domain.ErrRateLimited)
var (
	// ErrNotFound indicates the backend does not serve the requested resource.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the backend throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrBackendUnavailable indicates a 5xx response from the backend.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrMalformedResponse indicates a body that could not be decoded
	// into the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrShapeMismatch indicates the CDN and P2P series differ in length,
	// so index correspondence between them cannot hold.
	ErrShapeMismatch = errors.New("series shape mismatch")

	// ErrInvalidWindow indicates a window with an undefined endpoint or
	// with From not strictly before To.
	ErrInvalidWindow = errors.New("invalid window")
)
