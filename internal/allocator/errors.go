// Package allocator implements a user-space block allocator servicing
// allocate, free, reallocate and a zero-filling allocate variant over a
// single process heap, backed by a program-break-extension primitive
// and an anonymous page-mapping primitive.
package allocator

import ierrors "github.com/orizon-lang/osmem/internal/errors"

// StandardError is this package's error record, aliased from.
// internal/errors so callers outside the module never need to import.
// that package directly.
type StandardError = ierrors.StandardError

// ErrorCategory classifies a StandardError.
type ErrorCategory = ierrors.ErrorCategory

const (
	// CategoryMemory covers block-list/status misuse, e.g. reallocating.
	// a FREE block.
	CategoryMemory = ierrors.CategoryMemory

	// CategorySystem covers brk-extend/map-anon/unmap failures, reported.
	// to the fatal sink immediately before it aborts the process.
	CategorySystem = ierrors.CategorySystem

	// CategoryValidation covers malformed input to ancillary surfaces.
	// such as a BlockSnapshot loaded from disk.
	CategoryValidation = ierrors.CategoryValidation
)

// syscallFailure builds the diagnostic handed to the fatal sink when an.
// OS primitive reports failure.
func syscallFailure(primitive string, requested int, cause error) *StandardError {
	return ierrors.SyscallFailure(primitive, requested, cause)
}

// reallocOfFreeBlock builds the diagnostic for the (degenerate,.
// non-fatal) reallocation-of-a-FREE-block case described in spec.md §4.6.
func reallocOfFreeBlock() *StandardError {
	return ierrors.ReallocOfFreeBlock()
}

// invalidSnapshot builds the diagnostic for a BlockSnapshot whose shape.
// or schema version this module cannot load.
func invalidSnapshot(reason string) *StandardError {
	return ierrors.InvalidSnapshot(reason)
}
