package errors

import "errors"

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrMissingFile     = errors.New("no file uploaded")
	ErrEmptyFilename   = errors.New("no selected file")
)

// Export errors
var (
	ErrInvalidFormat = errors.New("invalid export format")
	ErrRenderFailed  = errors.New("document rendering failed")
)

// Integration errors
var (
	ErrStorageFailed = errors.New("storage operation failed")
	ErrPersistFailed = errors.New("database operation failed")
)
