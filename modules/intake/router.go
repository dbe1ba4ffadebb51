package intake

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/hrkit/pkg/binder"
	"github.com/dmitrymomot/hrkit/pkg/candidate"
	"github.com/dmitrymomot/hrkit/pkg/file"
	"github.com/dmitrymomot/hrkit/pkg/logger"
	"github.com/dmitrymomot/hrkit/pkg/payload"
)

// uploadField is the multipart form field carrying the document.
const uploadField = "file"

type storeResponse struct {
	DocumentID string `json:"document_id"`
}

type validateResponse struct {
	Valid  bool               `json:"valid"`
	Record candidate.Record   `json:"record"`
	Errors candidate.ErrorMap `json:"errors"`
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

type templateQuery struct {
	Role string `query:"role"`
}

// Handle returns the module's HTTP surface.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/api/v1", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/process-pdf", s.handleProcessPDF)
	r.Post("/store-document", s.handleStoreDocument)
	r.Post("/validate", s.handleValidate)
	r.Get("/template", s.handleTemplate)
	r.Get("/roles", s.handleRoles)
	r.Get("/documents/{id}", s.handleGetDocument)

	return r
}

func (s *Service) handleProcessPDF(w http.ResponseWriter, r *http.Request) {
	upload, err := binder.BindFileWithLimit(r, uploadField, s.cfg.MaxUploadSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}
	if upload == nil {
		respondError(w, http.StatusBadRequest, "missing_file", "multipart field \"file\" is required")
		return
	}
	if err := file.ValidateSize(upload.Size, s.cfg.MaxUploadSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "file_too_large", err.Error())
		return
	}

	result, err := s.ProcessDocument(r.Context(), upload.Filename, upload.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Service) handleStoreDocument(w http.ResponseWriter, r *http.Request) {
	raw, ok := bindPayload(w, r)
	if !ok {
		return
	}

	doc, errs, err := s.StoreDocument(r.Context(), raw)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !errs.IsEmpty() {
		respondValidation(w, errs)
		return
	}
	respondJSON(w, http.StatusOK, storeResponse{DocumentID: doc.ID})
}

func (s *Service) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, ok := bindPayload(w, r)
	if !ok {
		return
	}

	rec, errs := s.ValidateDocument(raw)
	respondJSON(w, http.StatusOK, validateResponse{
		Valid:  errs.IsEmpty(),
		Record: rec,
		Errors: errs,
	})
}

func (s *Service) handleTemplate(w http.ResponseWriter, r *http.Request) {
	var q templateQuery
	if err := binder.BindQuery(r, &q); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	if q.Role != "" {
		s.log.DebugContext(r.Context(), "template requested", logger.Role(q.Role))
	}
	respondJSON(w, http.StatusOK, candidate.TemplateForRole(q.Role))
}

func (s *Service) handleRoles(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, rolesResponse{Roles: candidate.AvailableRoles()})
}

func (s *Service) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// bindPayload decodes the request body into a raw payload, writing the error
// response itself when binding fails. Any JSON object is accepted here; shape
// problems are the validation engine's to report, not the transport's.
func bindPayload(w http.ResponseWriter, r *http.Request) (payload.Payload, bool) {
	var raw payload.Payload
	if err := binder.BindJSON(r, &raw); err != nil {
		if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
			respondError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())
			return nil, false
		}
		respondError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return nil, false
	}
	return raw, true
}
