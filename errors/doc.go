// Package errors provides structured error types for the sxscript decoder.
//
// Errors are categorized by Phase (which part of the file was being decoded)
// and Kind (error category). Every decode error carries the absolute byte
// offset at which the failing read started.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInstructions, errors.KindMalformedStream).
//		Section("instructions").
//		Offset(0x6a).
//		Detail("unknown opcode 0x%02x", 0xff).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseHeader, "header", 8, io.ErrUnexpectedEOF)
//	err := errors.UnknownOpcode(0x6a, 0xff)
//
// All errors implement the standard error interface and support errors.Is/As:
//
//	if errors.Is(err, errors.ErrTruncated) { ... }
package errors
