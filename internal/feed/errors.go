package feed

import "errors"

var (
	// ErrMalformedFeed is returned when the stream is not valid JSON, is not
	// a top-level object, or ends without a Version or a Total.
	ErrMalformedFeed = errors.New("malformed feed")

	// ErrRecordApply marks a single record that could not be written. It is
	// logged and the record is skipped; it never aborts a pass.
	ErrRecordApply = errors.New("failed to apply feed record")

	// ErrInvalidRecord is returned when a record lacks required fields or
	// carries a value of the wrong type.
	ErrInvalidRecord = errors.New("invalid feed record")
)
