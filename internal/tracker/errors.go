package tracker

import "errors"

var (
	// ErrEmptyStore is returned when an operation needs the latest activity
	// and nothing has been tracked yet.
	ErrEmptyStore = errors.New("no activities have been tracked")

	// ErrIndexOutOfRange is returned by edit-by-index with an invalid index.
	ErrIndexOutOfRange = errors.New("activity index out of range")

	// ErrMalformedTime is returned when a start/end edit value is not HH:MM:SS.
	ErrMalformedTime = errors.New("time value must be HH:MM:SS")

	ErrUnknownField  = errors.New("unknown activity field")
	ErrUnknownPeriod = errors.New("unknown period")
	ErrMissingValue  = errors.New("missing value")
)
