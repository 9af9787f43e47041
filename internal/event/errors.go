package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrInputTooLong      = errors.New("input text is too long")
	ErrTimeout           = errors.New("operation timed out")
	ErrInvalidDateFormat = errors.New("could not understand the date format")
	ErrPermissionDenied  = errors.New("calendar write permission denied")
	ErrUnknownAuthStatus = errors.New("calendar authorization status unknown")
	ErrNoDraft           = errors.New("no event draft to operate on")
	ErrSaveFailed        = errors.New("failed to save event")
	ErrUndoUnavailable   = errors.New("undo window is closed")
)
