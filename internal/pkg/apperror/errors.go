package apperror

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidEdge       = errors.New("invalid edge")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrConflict          = errors.New("conflict")
)
