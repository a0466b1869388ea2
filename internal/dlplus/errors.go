package dlplus

import "errors"

// Common errors returned by the DL Plus codec. All of them are caller-input
// validation failures; none are transient.
var (
	ErrUnknownContentType = errors.New("unknown DL Plus content type")
	ErrInvalidMarker      = errors.New("marker must be a non-negative integer")
	ErrTextTooLong        = errors.New("object text exceeds maximum byte length")
	ErrMessageTooLong     = errors.New("message exceeds maximum byte length")
	ErrTooManyEntries     = errors.New("maximum of 4 entries exceeded")
	ErrWrongType          = errors.New("wrong value type")
	ErrMissingObject      = errors.New("no object for content type")
)
