package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPath         = errors.New("path is required")
	ErrEmptyPassphrase   = errors.New("passphrase must not be empty")
	ErrInvalidIterations = errors.New("iterations must be a positive integer")
	ErrInvalidMode       = errors.New("invalid processing mode")
)
