package intake

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
	"github.com/dmitrymomot/hrkit/pkg/file"
	"github.com/dmitrymomot/hrkit/pkg/logger"
	"github.com/dmitrymomot/hrkit/pkg/ocr"
	"github.com/dmitrymomot/hrkit/pkg/payload"
)

// TextExtractor turns document bytes into text.
type TextExtractor interface {
	ExtractText(ctx context.Context, document []byte) (ocr.Result, error)
}

// Structurer turns document text into a raw candidate payload.
type Structurer interface {
	Structure(ctx context.Context, text string) (payload.Payload, error)
}

// ExtractionCache stores extraction results keyed by document content hash.
// Get returns ErrCacheMiss when the hash is unknown.
type ExtractionCache interface {
	Get(ctx context.Context, hash string) (payload.Payload, error)
	Set(ctx context.Context, hash string, extracted payload.Payload) error
}

// Indexer mirrors stored documents into a search backend.
type Indexer interface {
	Index(ctx context.Context, doc StoredDocument) error
}

// Archive keeps the original upload bytes. Satisfied by file.Storage.
type Archive interface {
	Save(ctx context.Context, r io.Reader, path string) (*file.File, error)
}

// ProcessResult is the outcome of processing one uploaded document: the
// canonical record together with its validation error map. Both are always
// present; an invalid document is a result, not a failure.
type ProcessResult struct {
	Record candidate.Record   `json:"record"`
	Errors candidate.ErrorMap `json:"errors"`
}

// Service orchestrates the intake pipeline. Extraction, structuring, and
// storage are required collaborators; cache, indexer, and archive are
// optional and their failures never fail a request.
type Service struct {
	cfg        Config
	extractor  TextExtractor
	structurer Structurer
	repo       Repository
	cache      ExtractionCache
	indexer    Indexer
	archive    Archive
	engine     *candidate.Engine
	log        *slog.Logger
}

// ServiceOption configures optional collaborators of the Service.
type ServiceOption func(*Service)

// WithCache enables the extraction cache.
func WithCache(c ExtractionCache) ServiceOption {
	return func(s *Service) {
		s.cache = c
	}
}

// WithIndexer enables search indexing of stored documents.
func WithIndexer(i Indexer) ServiceOption {
	return func(s *Service) {
		s.indexer = i
	}
}

// WithArchive enables archiving of original uploads.
func WithArchive(a Archive) ServiceOption {
	return func(s *Service) {
		s.archive = a
	}
}

// WithEngine replaces the default validation engine.
func WithEngine(e *candidate.Engine) ServiceOption {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the intake service.
func NewService(cfg Config, extractor TextExtractor, structurer Structurer, repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:        cfg,
		extractor:  extractor,
		structurer: structurer,
		repo:       repo,
		engine:     candidate.NewEngine(),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("intake"))
	return s
}

// ProcessDocument runs the full pipeline over one uploaded document: archive,
// extract text, reconcile the heuristic and structured extractions, then
// canonicalize and validate. The document is not stored; the caller decides
// what to do with the (record, errors) pair.
//
// Extraction and structuring faults abort processing and surface as
// ErrExtractionFailed and ErrStructuringFailed respectively. A document whose
// content fails validation is NOT an error: the violations come back in the
// result's error map.
func (s *Service) ProcessDocument(ctx context.Context, filename string, content []byte) (ProcessResult, error) {
	if !file.IsPDF(filename, content) {
		return ProcessResult{}, ErrUnsupportedUpload
	}

	hash := file.Hash(content)
	s.archiveUpload(ctx, filename, hash, content)

	raw, err := s.extractPayload(ctx, hash, content)
	if err != nil {
		return ProcessResult{}, err
	}

	rec := candidate.Canonicalize(raw)
	errs := s.engine.Validate(rec)

	s.log.InfoContext(ctx, "document processed",
		logger.Filename(filename),
		logger.ErrorFields(len(errs)),
	)

	return ProcessResult{Record: rec, Errors: errs}, nil
}

// extractPayload returns the raw candidate payload for the document, from the
// cache when possible. On a miss it extracts text, overlays the structured
// extraction onto the heuristic one, and caches the reconciled payload.
func (s *Service) extractPayload(ctx context.Context, hash string, content []byte) (payload.Payload, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, hash)
		if err == nil {
			s.log.DebugContext(ctx, "extraction cache hit", slog.String("hash", hash))
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.log.WarnContext(ctx, "extraction cache read failed", logger.Error(err))
		}
	}

	res, err := s.extractor.ExtractText(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrExtractionFailed, err)
	}

	structured, err := s.structurer.Structure(ctx, res.Text)
	if err != nil {
		return nil, errors.Join(ErrStructuringFailed, err)
	}

	// The heuristic pass is the base; structured fields overwrite it only
	// where they carry substance.
	merged := payload.Merge(HeuristicExtract(res.Text), structured)

	if s.cache != nil {
		if err := s.cache.Set(ctx, hash, merged); err != nil {
			s.log.WarnContext(ctx, "extraction cache write failed", logger.Error(err))
		}
	}
	return merged, nil
}

// archiveUpload keeps the original document bytes when an archive is
// configured. Best-effort: a failed archive write is logged and the pipeline
// continues.
func (s *Service) archiveUpload(ctx context.Context, filename, hash string, content []byte) {
	if s.archive == nil {
		return
	}

	path := "uploads/" + hash + "/" + file.SanitizeFilename(filename)
	if _, err := s.archive.Save(ctx, bytes.NewReader(content), path); err != nil {
		s.log.WarnContext(ctx, "upload archive failed",
			logger.Filename(filename),
			logger.Error(err),
		)
	}
}

// StoreDocument canonicalizes and validates the raw payload and persists the
// record when the error map is empty. A non-empty map short-circuits before
// storage and is returned with a nil document; storage faults surface as
// ErrStorageFailed.
func (s *Service) StoreDocument(ctx context.Context, raw payload.Payload) (*StoredDocument, candidate.ErrorMap, error) {
	rec := candidate.Canonicalize(raw)
	if errs := s.engine.Validate(rec); !errs.IsEmpty() {
		return nil, errs, nil
	}

	doc, err := s.repo.Store(ctx, rec)
	if err != nil {
		return nil, nil, errors.Join(ErrStorageFailed, err)
	}

	if s.indexer != nil {
		if err := s.indexer.Index(ctx, *doc); err != nil {
			s.log.WarnContext(ctx, "search indexing failed",
				logger.DocumentID(doc.ID),
				logger.Error(err),
			)
		}
	}

	s.log.InfoContext(ctx, "document stored", logger.DocumentID(doc.ID))
	return doc, nil, nil
}

// ValidateDocument canonicalizes and validates the raw payload without
// touching any collaborator. It cannot fail; the error map is the verdict.
func (s *Service) ValidateDocument(raw payload.Payload) (candidate.Record, candidate.ErrorMap) {
	rec := candidate.Canonicalize(raw)
	return rec, s.engine.Validate(rec)
}

// GetDocument fetches a stored document by ID. ErrDocumentNotFound passes
// through; any other repository fault surfaces as ErrStorageFailed.
func (s *Service) GetDocument(ctx context.Context, id string) (*StoredDocument, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrStorageFailed, err)
	}
	return doc, nil
}
