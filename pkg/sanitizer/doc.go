// Package sanitizer provides small, pure transformations for cleaning the
// text that flows through the document pipeline: scalar values recovered from
// extraction payloads, skill and achievement lists, and raw OCR output.
//
// Every helper is a stateless func(T) T. The higher-order Apply and Compose
// helpers chain them into pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	)
//	name := clean("  John   Doe ") // "John Doe"
//
// Slice helpers return fresh slices and never mutate their input, so a caller
// can safely share the originals.
package sanitizer
