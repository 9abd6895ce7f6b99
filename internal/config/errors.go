package config

import "errors"

var (
	// ErrInvalidArguments is returned when the command line cannot be turned
	// into a Config. It is fatal and aborts the run before any search starts.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrPathUnresolvable is returned by Canonicalize when a path cannot be
	// resolved. Callers keep the absolute raw path as a fallback identity.
	ErrPathUnresolvable = errors.New("path cannot be resolved")
)
