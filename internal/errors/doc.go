// Package errors provides structured error types for the layout compiler.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category), and carry the structure and field they concern.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseGroup, errors.KindUnclosedGroup).
//		Struct("PortInfo").
//		Field("localPortNum").
//		Detail("group still open after %d bits", 12).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Schema("PortInfo", "LID", errors.KindWidth, "width must be non-zero")
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind only.
package errors
