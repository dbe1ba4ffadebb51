package intake

import "errors"

var (
	// Collaborator faults. These propagate to the caller unmodified; the
	// pipeline never retries or masks them.
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrStructuringFailed = errors.New("document structuring failed")
	ErrStorageFailed     = errors.New("document storage failed")

	ErrDocumentNotFound  = errors.New("document not found")
	ErrUnsupportedUpload = errors.New("uploaded file must be a PDF")
	ErrCacheMiss         = errors.New("extraction cache miss")
)
