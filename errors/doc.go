// Package errors provides structured error types for the kernel-bridge
// bindings.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). All validation lives in the binding layers, so every error here
// originates in an adapter; the kernel itself has no failure path.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindConversionLoss).
//		Binding("vm").
//		Value(1.5).
//		Detail("iteration count must be integral").
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.InvalidArgument(errors.PhaseMarshal, "iterations must be non-negative")
//	err := errors.OutOfRange(errors.PhaseMarshal, n, max)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
