package types

import "errors"

var (
	// ErrMalformed signals that a value couldn't be parsed into an attribute.
	ErrMalformed = errors.New("malformed element")
	// ErrAbsent signals that an optional attribute needed for an operation isn't present.
	ErrAbsent = errors.New("attribute absent")
)
