package intake

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/hrkit/pkg/candidate"
)

// envelope is the standard JSON response structure: data on success, error on
// failure, never both.
type envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

// errorDetail carries a machine-readable code, a human-readable message, and
// for validation failures the per-field violation map.
type errorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Error: &errorDetail{
		Code:    code,
		Message: message,
	}})
}

// respondValidation reports a rejected payload with the full violation map as
// error details.
func respondValidation(w http.ResponseWriter, errs candidate.ErrorMap) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(envelope{Error: &errorDetail{
		Code:    "validation_error",
		Message: "document failed validation",
		Details: errs,
	}})
}

// respondServiceError maps pipeline faults to transport status codes. The
// structurer is an upstream service, so its faults read as a bad gateway;
// everything else inside the pipeline is an internal error.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedUpload):
		respondError(w, http.StatusBadRequest, "unsupported_upload", ErrUnsupportedUpload.Error())
	case errors.Is(err, ErrDocumentNotFound):
		respondError(w, http.StatusNotFound, "document_not_found", ErrDocumentNotFound.Error())
	case errors.Is(err, ErrExtractionFailed):
		respondError(w, http.StatusInternalServerError, "extraction_failed", ErrExtractionFailed.Error())
	case errors.Is(err, ErrStructuringFailed):
		respondError(w, http.StatusBadGateway, "structuring_failed", ErrStructuringFailed.Error())
	case errors.Is(err, ErrStorageFailed):
		respondError(w, http.StatusInternalServerError, "storage_failed", ErrStorageFailed.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
