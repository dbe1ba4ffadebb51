package binder

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/textproto"
	"path/filepath"
)

// DefaultMaxMemory bounds the in-memory portion of a parsed multipart
// body; anything beyond it spills to temporary files.
const DefaultMaxMemory = 10 << 20

// FileUpload is a single multipart file part read fully into memory.
// Header carries the part's MIME header and Size equals len(Content).
type FileUpload struct {
	Filename string
	Size     int64
	Header   textproto.MIMEHeader
	Content  []byte
}

// ContentType reports the upload's media type, trusting the part's
// Content-Type header when present and falling back to the filename
// extension otherwise.
func (f *FileUpload) ContentType() string {
	ct := f.Header.Get("Content-Type")
	if ct == "" {
		return mime.TypeByExtension(filepath.Ext(f.Filename))
	}
	mediaType, _, _ := mime.ParseMediaType(ct)
	return mediaType
}

// BindFile reads the file uploaded under field. When several parts share
// the field name only the first is returned. A missing file is not an
// error: callers get nil, nil and decide for themselves whether the
// upload was required.
func BindFile(r *http.Request, field string) (*FileUpload, error) {
	return BindFileWithLimit(r, field, DefaultMaxMemory)
}

// BindFileWithLimit is BindFile with an explicit memory limit for
// multipart parsing.
func BindFileWithLimit(r *http.Request, field string, maxMemory int64) (*FileUpload, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: parse multipart form: %v", ErrInvalidFile, err)
		}
	}

	src, header, err := r.FormFile(field)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidFile, field, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrInvalidFile, header.Filename, err)
	}

	return &FileUpload{
		Filename: header.Filename,
		Size:     int64(len(content)),
		Header:   header.Header,
		Content:  content,
	}, nil
}
