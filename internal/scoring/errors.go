package scoring

import "errors"

var (
	// ErrDataUnavailable means the response store could not be read or the submission is unknown.
	ErrDataUnavailable = errors.New("response data unavailable")
	// ErrMalformedInput means a stored value is non-numeric or outside the response scale.
	ErrMalformedInput = errors.New("malformed response value")
	// ErrStyleNotFound is returned alongside an empty profile and is never fatal.
	ErrStyleNotFound = errors.New("style not found in preference matrix")
	// ErrConfiguration means the question catalog or preference matrix could not be loaded.
	ErrConfiguration = errors.New("invalid scoring configuration")
)
