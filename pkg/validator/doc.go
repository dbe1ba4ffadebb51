// Package validator provides small, composable validation rules for the
// values that appear in candidate documents: strings, numbers, dates, and
// Brazilian CPF tax identifiers.
//
// Each exported function constructs a Rule value pairing a boolean Check with
// the error to report when the check fails. Rules are evaluated with Apply,
// which collects every failure, in the order the rules were given, into a
// ValidationErrors slice that satisfies the error interface. Callers that need
// field-level detail recover it with ExtractValidationErrors.
//
// # Architecture
//
// Each source file groups the rules for one family of values
// (string_rules.go, date_rules.go, numeric_rules.go, cpf_rules.go). There is
// no registry and no hidden state: a Rule closes over the value it inspects,
// so the package is stateless and goroutine-safe. Rules that depend on the
// current moment take an explicit reference time instead of consulting the
// wall clock, which keeps their outcome reproducible.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.MinLenString("name", name, 3),
//	    validator.NotInFuture("document_date", docDate, time.Now()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect per-field messages
//	}
package validator
