// Package mtserror defines the two error kinds every metatensor-core
// operation can fail with: InvalidParameter for caller-observable
// precondition failures, and ArrayBackendError for failures forwarded
// verbatim from a caller-supplied Array implementation. Unimplemented marks
// the one case (gradients in components_to_properties) that is intentionally
// not supported yet.
//
// Errors:
//
//	Kind           - InvalidParameter | ArrayBackendError | Unimplemented
//	Error          - carries a Kind, a message, and an optional wrapped cause
//	KindOf         - recovers the Kind from any error, defaulting to the zero Kind
//
// The core never retries and never recovers locally; every operation either
// succeeds or returns one of these in its entirety (spec §7, §4.E.8).
package mtserror
