package allocator

// allocateMapped services a request via the map-anon primitive.
// (spec.md §4.2). totalBytes is the entire region size, header.
// included. On failure the fatal sink is consulted and this function.
// does not return (the sink is expected to terminate the process); if.
// the sink itself returns (as a test sink may), the result is nil and.
// must not be used.
func (a *Allocator) allocateMapped(totalBytes int) *block {
	base, err := a.config.OS.MapAnon(totalBytes)
	if err != nil {
		a.fatalIf(true, syscallFailure("map-anon", totalBytes, err))

		return nil
	}

	b := blockAt(base)
	// size denotes the entire mapped region including the header — this.
	// asymmetry (vs. heap blocks, which store payload-only) is.
	// intentional and is exploited at unmap time in Free.
	b.size = uintptr(totalBytes)
	b.status = StatusMapped
	b.prev, b.next = 0, 0

	a.listHead = insertTail(a.listHead, b)

	return b
}

// allocateSbrk services a request via the brk-extend primitive.
// (spec.md §4.2). totalBytes is the entire region size, header.
// included; the stored size is payload-only, the convention heap.
// blocks use for split/merge arithmetic.
func (a *Allocator) allocateSbrk(totalBytes int) *block {
	base, err := a.config.OS.BrkExtend(totalBytes)
	if err != nil {
		a.fatalIf(true, syscallFailure("brk-extend", totalBytes, err))

		return nil
	}

	b := blockAt(base)
	b.size = uintptr(totalBytes) - a.headerSize
	b.status = StatusAlloc
	b.prev, b.next = 0, 0

	a.listHead = insertTail(a.listHead, b)

	return b
}
