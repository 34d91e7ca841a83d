package errors

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrValidation         = errors.New("validation failed")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrInvalidFile        = errors.New("invalid file")
	ErrParserUnavailable  = errors.New("parser unavailable")
)
