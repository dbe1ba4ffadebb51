// Package candidate is the reconciliation and validation core of the document
// pipeline. It turns the arbitrary, untrusted payloads produced by OCR + LLM
// extraction (or by form edits) into canonical candidate records, and judges
// those records field by field.
//
// The package exposes three operations:
//
//   - Canonicalize converts any raw payload into a Record, degrading
//     gracefully: wrong-typed scalars and unparsable dates become absent
//     fields, malformed list values become empty lists, and a malformed
//     work-experience entry becomes a minimal defaulted entry rather than
//     being dropped. Canonicalize never fails.
//
//   - Engine.Validate runs an ordered set of field and cross-field rules over
//     a Record and returns an ErrorMap keyed by field path
//     (work_experience.0.end_date). An empty ErrorMap is the sole acceptance
//     signal; business-rule violations are data, never Go errors.
//
//   - DefaultTemplate, TemplateForRole and AvailableRoles supply known-good
//     example records used as form scaffolding and test fixtures.
//
// Everything in the package is pure and synchronous: no I/O, no shared state,
// no clock reads unless the caller injects one. Any number of records may be
// canonicalized and validated concurrently.
package candidate
