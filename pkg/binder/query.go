package binder

import (
	"net/http"
)

// BindQuery populates v from the request's query parameters.
//
// Field names come from `query:"name"` tags; `query:"-"` skips a field and
// an untagged field binds to its lowercased name. Basic types, slices of
// basic types (multi-value or comma-separated) and pointers for optional
// parameters are supported.
//
// Example:
//
//	var req struct {
//		Role string `query:"role"`
//	}
//	if err := binder.BindQuery(r, &req); err != nil {
//		// respond with 400
//	}
func BindQuery(r *http.Request, v any) error {
	return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
}
