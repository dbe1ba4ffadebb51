package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage implements Storage on the local filesystem. Every operation
// resolves its path below the base directory and refuses anything that
// escapes it. Safe for concurrent use.
type LocalStorage struct {
	baseDir       string
	baseURL       string
	uploadTimeout time.Duration
}

// LocalOption configures LocalStorage at construction.
type LocalOption func(*LocalStorage)

// WithLocalUploadTimeout bounds a single Save call. Zero leaves the caller's
// context deadline in charge.
func WithLocalUploadTimeout(d time.Duration) LocalOption {
	return func(s *LocalStorage) { s.uploadTimeout = d }
}

// NewLocalStorage roots a filesystem archive at baseDir, creating the
// directory when missing. baseURL is what URL prepends to stored paths.
func NewLocalStorage(baseDir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: base directory is required", ErrInvalidConfig)
	}

	root, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{baseDir: root, baseURL: baseURL}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ctxReader fails the copy as soon as ctx is done, so a stalled upload
// cannot hold the destination file open past cancellation.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

// sniffHead retains the first 512 bytes written through it, enough for
// DetectMIMEType.
type sniffHead struct {
	head []byte
}

func (w *sniffHead) Write(p []byte) (int, error) {
	if room := 512 - len(w.head); room > 0 {
		w.head = append(w.head, p[:min(room, len(p))]...)
	}
	return len(p), nil
}

// Save streams the reader's content to path below the base directory,
// creating parent directories as needed. The partial file is removed when
// the copy fails or the context is canceled.
func (s *LocalStorage) Save(ctx context.Context, r io.Reader, path string) (*File, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, fmt.Errorf("create parent directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	head := &sniffHead{}
	written, err := io.Copy(io.MultiWriter(out, head), ctxReader{ctx: ctx, r: r})
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	rel, err := filepath.Rel(s.baseDir, dst)
	if err != nil {
		rel = path
	}
	name := filepath.Base(dst)

	return &File{
		Filename:     name,
		Size:         written,
		MIMEType:     DetectMIMEType(head.head),
		Extension:    Extension(name),
		AbsolutePath: dst,
		RelativePath: rel,
	}, nil
}

// Delete removes the file at path. Directories must go through DeleteDir.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		return fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// DeleteDir removes the directory at path along with everything below it.
// Regular files must go through Delete.
func (s *LocalStorage) DeleteDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	case err != nil:
		return fmt.Errorf("stat %s: %w", path, err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path resolves to an existing file or directory
// below the base directory.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}

	target, err := s.resolve(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(target)
	return err == nil
}

// URL maps a stored path to its public URL. Absolute paths pass through
// untouched.
func (s *LocalStorage) URL(path string) string {
	clean := filepath.ToSlash(filepath.Clean(path))
	if strings.HasPrefix(clean, "/") {
		return clean
	}
	return s.baseURL + clean
}

// resolve anchors path below the base directory. Cleaned paths that still
// climb out of it are rejected.
func (s *LocalStorage) resolve(path string) (string, error) {
	target := filepath.Join(s.baseDir, path)
	rel, err := filepath.Rel(s.baseDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return target, nil
}
