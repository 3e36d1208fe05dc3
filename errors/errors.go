package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidURL      = errors.New("invalid url: no scheme separator")
	ErrInvalidHexDigit = errors.New("invalid hex digit")
	ErrShortBuffer     = errors.New("destination buffer is too short")
)
