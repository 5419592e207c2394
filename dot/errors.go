package dot

import "errors"

var (
	// ErrInvalidKeyKind is returned when a key is not a string.
	ErrInvalidKeyKind = errors.New("only string keys are supported")

	// ErrEmptyKey is returned when writing with the empty string as key.
	ErrEmptyKey = errors.New("key is empty string")

	// ErrUnsupported is returned for operations a container refuses,
	// such as clearing all entries in place.
	ErrUnsupported = errors.New("operation not supported")
)
