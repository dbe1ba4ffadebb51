// Package payload provides typed access to the untyped, arbitrarily shaped
// mappings produced by the extraction pipeline (LLM output, form submissions,
// stored documents).
//
// A Payload is one level of such a mapping. Accessors never panic and never
// guess: a key that is missing or holds a value of the wrong kind reports
// ok=false, and the caller decides what absence means. The one place the
// package deliberately recovers data is where extraction output is known to
// be sloppy: quoted numbers for numeric fields, and scalar entries inside
// list fields, which are coerced to their string form.
//
// All accessors are safe on a nil Payload.
package payload
