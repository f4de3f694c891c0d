package mediarss

import (
	"errors"
)

var (
	// ErrInvalidOptions signals that the passed Options contradict each other or are incomplete.
	ErrInvalidOptions = errors.New("invalid options")
)
