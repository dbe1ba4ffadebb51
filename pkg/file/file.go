package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// File is the stored upload's metadata.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	Extension    string
	AbsolutePath string
	RelativePath string
}

// Storage is the archive backend for original uploads.
type Storage interface {
	// Save stores the reader's content at path and returns metadata.
	Save(ctx context.Context, r io.Reader, path string) (*File, error)
	// Delete removes one file.
	Delete(ctx context.Context, path string) error
	// DeleteDir removes a directory tree.
	DeleteDir(ctx context.Context, path string) error
	// Exists reports whether path exists.
	Exists(ctx context.Context, path string) bool
	// URL maps path to its public URL.
	URL(path string) string
}

// IsPDF checks whether the upload is a PDF, by content first and extension as
// a fallback. Extensions alone cannot be trusted but content sniffing fails on
// some scanner output, so both are consulted.
func IsPDF(filename string, content []byte) bool {
	if DetectMIMEType(content) == "application/pdf" {
		return true
	}
	return strings.ToLower(Extension(filename)) == ".pdf"
}

// Extension returns the file extension including the dot.
func Extension(filename string) string {
	return filepath.Ext(filename)
}

// DetectMIMEType sniffs the MIME type from the leading bytes of content.
// At most 512 bytes are examined.
func DetectMIMEType(content []byte) string {
	if len(content) > 512 {
		content = content[:512]
	}
	return http.DetectContentType(content)
}

// ValidateSize rejects sizes over maxBytes.
func ValidateSize(size, maxBytes int64) error {
	if size > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, size, maxBytes)
	}
	return nil
}

// ValidateMIMEType checks if the content-detected MIME type is in the
// allowed list. Pass no types to allow everything.
func ValidateMIMEType(content []byte, allowedTypes ...string) error {
	if len(allowedTypes) == 0 {
		return nil
	}

	mimeType := DetectMIMEType(content)
	if slices.Contains(allowedTypes, mimeType) {
		return nil
	}

	return fmt.Errorf("%w: detected %s, allowed %v", ErrMIMETypeNotAllowed, mimeType, allowedTypes)
}

// Hash returns the hex-encoded SHA-256 of content. The extraction cache keys
// documents by this value.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// SanitizeFilename strips path components and dangerous characters from a
// filename. Returns "unnamed" for empty or special directory references.
func SanitizeFilename(filename string) string {
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	filename = strings.ReplaceAll(filename, "\x00", "")

	switch filename {
	case "", ".", "..", "/":
		return "unnamed"
	}
	return filename
}
