package appf

import "errors"

var (
	// ErrInvalidRect is returned when a window is requested with an empty
	// or degenerate rectangle. No native call is made in that case.
	ErrInvalidRect = errors.New("appf: window rectangle is empty")

	// ErrConfigMismatch is returned when a window is registered with a
	// loop that runs on a different connection.
	ErrConfigMismatch = errors.New("appf: window belongs to a different connection")

	// ErrDuplicateWindow is returned when a window handle is already
	// registered with the loop.
	ErrDuplicateWindow = errors.New("appf: window handle already registered")
)
