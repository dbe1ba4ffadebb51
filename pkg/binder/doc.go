// Package binder decodes HTTP request data into Go values.
//
// It covers the three request shapes the document intake API accepts:
// JSON bodies, query parameters, and multipart file uploads.
//
//	var req struct {
//		Role string `query:"role"`
//	}
//	if err := binder.BindQuery(r, &req); err != nil {
//		// respond with 400
//	}
//
// JSON binding is strict: the media type must be application/json, unknown
// fields are rejected for struct targets, and trailing data after the JSON
// value is an error. Map targets (raw extraction payloads) accept any keys.
//
// File binding loads uploads into memory. Candidate documents are small, so
// the default 10MB limit is generous; use BindFileWithLimit to override it.
package binder
