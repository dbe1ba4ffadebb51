// Package intake turns uploaded candidate documents into validated records.
//
// The pipeline for an uploaded PDF is: extract text (embedded text layer or
// OCR), run the Portuguese label heuristics, ask the LLM structurer for its
// reading of the same text, merge both raw payloads (structurer wins where it
// produced substance), canonicalize, validate. The resulting record and error
// map are the product; a document with violations is a normal outcome, not a
// fault.
//
// Storage is only reached through StoreDocument and only when the error map
// is empty. Collaborator faults (extraction, structuring, storage) surface as
// sentinel-rooted errors; the optional collaborators (extraction cache,
// search indexer, upload archive) are best-effort and never fail a request.
//
// The module mounts its HTTP surface with Handle:
//
//	r := chi.NewRouter()
//	r.Mount("/", svc.Handle())
package intake
