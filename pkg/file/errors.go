package file

import "errors"

// Sentinel errors callers branch on with errors.Is. Lower-level causes are
// wrapped with operation context rather than given sentinels of their own.
var (
	ErrInvalidConfig = errors.New("invalid storage configuration")

	ErrNilReader   = errors.New("source reader is nil")
	ErrInvalidPath = errors.New("path escapes the storage root")

	ErrFileNotFound      = errors.New("file does not exist")
	ErrDirectoryNotFound = errors.New("directory does not exist")
	ErrIsDirectory       = errors.New("path is a directory, not a file")
	ErrNotDirectory      = errors.New("path is a file, not a directory")

	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrMIMETypeNotAllowed = errors.New("detected MIME type is not allowed")

	ErrAccessDenied       = errors.New("storage access denied")
	ErrBucketNotFound     = errors.New("storage bucket does not exist")
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)
