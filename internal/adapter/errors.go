package adapter

import "errors"

var (
	// ErrFetch is returned when the feed cannot be downloaded: a transport
	// error, a timeout or a non-200 status.
	ErrFetch = errors.New("feed fetch failed")

	// ErrCanceled is returned once the caller has canceled a download. It
	// must not be reported to the user as a failure.
	ErrCanceled = errors.New("feed fetch canceled")

	// ErrIdleTimeout is wrapped into ErrFetch when no bytes arrive within
	// the configured timeout.
	ErrIdleTimeout = errors.New("feed read idle timeout")

	// ErrInvalidURL is returned for empty or unparsable endpoint addresses.
	ErrInvalidURL = errors.New("invalid url")

	// ErrUsageSubmit is returned when a usage log is not accepted.
	ErrUsageSubmit = errors.New("usage log submit failed")

	// ErrImageFetch is returned when an image cannot be downloaded.
	ErrImageFetch = errors.New("image fetch failed")
)

// Status errors produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)
