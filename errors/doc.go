// Package errors provides structured error types for the wit-abi tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries the logical path to the
// offending entity and a cause chain.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseRender, errors.KindUnresolvedType).
//		Path("point", "x").
//		Detail("type id %d out of range", id).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.UnresolvedType(errors.PhaseRender, path, int(id))
//	err := errors.NotUpToDate("types.abi.md")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
