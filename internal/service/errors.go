package service

import "errors"

// Sentinel errors shared by the use-case layer. Handlers translate these to
// HTTP statuses; anything else is an internal error.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrIDRequired     = errors.New("id is required")
	ErrNameRequired   = errors.New("name is required")
	ErrTitleRequired  = errors.New("title is required")
	ErrPromptRequired = errors.New("prompt is required")
	ErrReaderNil      = errors.New("reader is nil")
)
