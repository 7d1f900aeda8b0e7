package allocator

// OSPrimitives is the external-collaborator contract spec.md §6 places.
// out of scope for the block manager: a contiguous program-break.
// extension primitive, an anonymous page-mapping primitive, and the OS.
// page size. The block manager never talks to the kernel directly; it.
// only ever goes through this interface, which keeps the hard-to-test.
// syscall boundary narrow and mockable (see osmock).
type OSPrimitives interface {
	// BrkExtend advances the program break by delta bytes and returns.
	// the break's previous value (the base of the newly extended.
	// region). This allocator never calls it with a negative delta.
	// (spec.md Non-goals exclude shrinking the program break), and the.
	// implementations in this package return an error for one.
	BrkExtend(delta int) (prevBreak uintptr, err error)

	// MapAnon returns the base address of a fresh, page-aligned,.
	// private anonymous mapping of length bytes.
	MapAnon(length int) (base uintptr, err error)

	// Unmap releases a mapping previously returned by MapAnon.
	Unmap(base uintptr, length int) error

	// PageSize returns the OS page size in bytes.
	PageSize() int
}
