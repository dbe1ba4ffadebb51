package ocr

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/hrkit/pkg/logger"
	"github.com/dmitrymomot/hrkit/pkg/sanitizer"
)

// Result is the outcome of a document extraction.
type Result struct {
	Text     string
	Pages    int
	OCRPages int // pages that went through tesseract instead of the text layer
}

// Extractor turns PDF bytes into cleaned text.
type Extractor struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

// Option configures the extractor.
type Option func(*Extractor)

// WithRunner replaces the subprocess runner, used to stub tesseract in tests.
func WithRunner(r Runner) Option {
	return func(e *Extractor) {
		if r != nil {
			e.runner = r
		}
	}
}

// WithLogger sets the logger for per-page diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(e *Extractor) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an extractor with defaults filled in for zero config values.
func New(cfg Config, opts ...Option) *Extractor {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"por", "eng"}
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinPageText <= 0 {
		cfg.MinPageText = 32
	}

	e := &Extractor{cfg: cfg, runner: execRunner{}, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText reads every page of the document, falling back to OCR for pages
// whose text layer is missing or too thin to be real content.
func (e *Extractor) ExtractText(ctx context.Context, document []byte) (Result, error) {
	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return Result{}, errors.Join(ErrUnsupportedDocument, err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if e.cfg.MaxPages > 0 && pages > e.cfg.MaxPages {
		pages = e.cfg.MaxPages
	}

	var (
		parts    []string
		ocrPages int
		ocrErrs  []error
		tmpDir   string
	)
	defer func() {
		if tmpDir != "" {
			_ = os.RemoveAll(tmpDir)
		}
	}()

	for i := range pages {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		text, err := doc.Text(i)
		if err == nil && utf8.RuneCountInString(strings.TrimSpace(text)) >= e.cfg.MinPageText {
			parts = append(parts, text)
			continue
		}

		if tmpDir == "" {
			tmpDir, err = os.MkdirTemp("", "hrkit-ocr-*")
			if err != nil {
				return Result{}, errors.Join(ErrOCRFailed, err)
			}
		}

		ocrText, err := e.ocrPage(ctx, doc, i, tmpDir)
		if err != nil {
			e.log.WarnContext(ctx, "page OCR failed",
				logger.Component("ocr"),
				slog.Int("page", i),
				logger.Error(err),
			)
			ocrErrs = append(ocrErrs, err)
			continue
		}
		ocrPages++
		parts = append(parts, ocrText)
	}

	text := CleanText(strings.Join(parts, "\n\n"))
	if text == "" {
		if len(ocrErrs) > 0 {
			return Result{}, errors.Join(append([]error{ErrOCRFailed}, ocrErrs...)...)
		}
		return Result{}, ErrNoTextContent
	}

	e.log.DebugContext(ctx, "document text extracted",
		logger.Component("ocr"),
		logger.Pages(pages),
		slog.Int("ocr_pages", ocrPages),
	)

	return Result{Text: text, Pages: pages, OCRPages: ocrPages}, nil
}

// ocrPage rasterizes one page and runs tesseract over the image.
func (e *Extractor) ocrPage(ctx context.Context, doc *fitz.Document, page int, tmpDir string) (string, error) {
	img, err := doc.ImageDPI(page, e.cfg.DPI)
	if err != nil {
		return "", fmt.Errorf("render page %d: %w", page, err)
	}

	imgPath := filepath.Join(tmpDir, fmt.Sprintf("page-%03d.png", page))
	f, err := os.Create(imgPath)
	if err != nil {
		return "", fmt.Errorf("create page image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode page image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close page image: %w", err)
	}

	args := []string{imgPath, "stdout", "-l", strings.Join(e.cfg.Languages, "+")}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract page %d: %w: %s", page, err, strings.TrimSpace(string(errb)))
	}
	return string(out), nil
}

// CleanText normalizes extracted text: NFC form so accented Portuguese
// characters compare equal regardless of how the PDF encoded them, control
// characters stripped, runs of blank lines collapsed.
func CleanText(text string) string {
	text = norm.NFC.String(text)
	text = sanitizer.Apply(text,
		sanitizer.RemoveControlChars,
		sanitizer.CollapseBlankLines,
		sanitizer.Trim,
	)
	return text
}
