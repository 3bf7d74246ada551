package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyKeyword        = errors.New("keyword is required")
	ErrInvalidSubmitTime   = errors.New("invalid handset submit time")
	ErrFieldTooLong        = errors.New("field value is too long")
	ErrSubmitTimeInFuture  = errors.New("handset submit time is in the future")
	ErrInvalidReceivedTime = errors.New("invalid received time")
)
