package allocator

import "unsafe"

// Allocate services a byte-count request (spec.md §4.3), using the.
// heap-threshold regime. Returns nil for a zero-size request.
func (a *Allocator) Allocate(n int) unsafe.Pointer {
	return a.allocateWithThreshold(n, a.config.HeapThreshold)
}

// allocateWithThreshold is Allocate generalized over the regime.
// threshold, so AllocateZero can reuse the exact same routing logic.
// with the page-size threshold instead of the heap threshold (spec.md.
// §4.7, SPEC_FULL.md §C.1) without any shared mutable "am I in a.
// calloc call" flag.
func (a *Allocator) allocateWithThreshold(n, threshold int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}

	total := alignUp(n, a.config.AlignmentUnit) + int(a.headerSize)

	var b *block
	if total >= threshold {
		b = a.allocateMapped(total)
	} else if !a.heapPreallocated {
		// First heap-backed request: reserve the whole quantum and hand.
		// it, unsplit, to this caller (spec.md §4.3 step 4a, and the.
		// Open Question in §9 this module reproduces verbatim).
		a.heapPreallocated = true
		b = a.allocateSbrk(a.config.PreallocQuantum)
	} else {
		b = a.findOrExtend(total)
		if b == nil {
			b = a.allocateSbrk(total)
		}
	}

	if b == nil {
		return nil
	}

	return b.payload(a.headerSize)
}
