package model

import "github.com/pkg/errors"

// Error kinds returned by grid construction, snapshot parsing and comparison.
// Callers classify wrapped errors with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrFormat               = errors.New("malformed snapshot")
	ErrShapeMismatch        = errors.New("grid shape mismatch")
)
