package ocr

import (
	"context"
	"errors"
	"os/exec"
)

// Runner executes external commands so tests can stub tesseract.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

// Run captures stdout directly; stderr is only surfaced on failure, via the
// exit error, which is the only time the extractor looks at it.
func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, exitErr.Stderr, err
	}
	return out, nil, err
}
