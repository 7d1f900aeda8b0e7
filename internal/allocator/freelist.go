package allocator

// coalesceAll merges every pair of list-adjacent FREE heap blocks into.
// one (spec.md §4.4). Only heap blocks are ever adjacent FREE entries —.
// mapped blocks are removed from the list on free, never marked FREE.
func (a *Allocator) coalesceAll() {
	cur := a.listHead

	for cur != nil && cur.hasNext() {
		next := cur.nextBlock()

		if cur.status == StatusFree && next.status == StatusFree {
			cur.size += next.size + a.headerSize
			cur.next = next.next

			if next.hasNext() {
				next.nextBlock().prev = cur.addr()
			}

			// Do not advance past cur: it may now be adjacent to a.
			// third FREE block after absorbing next.
			continue
		}

		cur = next
	}
}

// bestFit scans the whole list for the smallest FREE block whose.
// payload is at least requiredPayload, ties broken by list order.
// (spec.md §4.4).
func (a *Allocator) bestFit(requiredPayload uintptr) *block {
	var best *block

	for cur := a.listHead; cur != nil; cur = cur.nextBlock() {
		if cur.status != StatusFree || cur.size < requiredPayload {
			continue
		}

		if best == nil || cur.size < best.size {
			best = cur
		}
	}

	return best
}

// searchAndSplit finds a best-fit block for total (header included),.
// marks it ALLOC, and splits off a FREE remainder when it is large.
// enough to host a header plus at least one aligned payload byte.
// (spec.md §4.4).
func (a *Allocator) searchAndSplit(total uintptr) *block {
	requiredPayload := total - a.headerSize

	chosen := a.bestFit(requiredPayload)
	if chosen == nil {
		return nil
	}

	chosen.status = StatusAlloc

	// align(1): the remainder must host a header plus at least one.
	// aligned payload byte to be worth splitting off (spec.md §4.4).
	minSplitSize := total + uintptr(alignUp(1, a.config.AlignmentUnit))

	if chosen.size >= minSplitSize {
		remainder := blockAt(chosen.addr() + total)
		remainder.size = chosen.size - total
		remainder.status = StatusFree
		remainder.next = chosen.next
		remainder.prev = chosen.addr()

		if remainder.hasNext() {
			remainder.nextBlock().prev = remainder.addr()
		}

		chosen.next = remainder.addr()
		chosen.size = requiredPayload
	}

	return chosen
}

// findOrExtend is the heap-backed reuse path (spec.md §4.4): coalesce,.
// try a best-fit split, and failing that try extending the heap tail.
// in place. Returns nil if none of those succeed; the caller then.
// falls back to a brand-new allocateSbrk.
func (a *Allocator) findOrExtend(total int) *block {
	a.coalesceAll()

	if b := a.searchAndSplit(uintptr(total)); b != nil {
		return b
	}

	return a.extendHeapTail(uintptr(total), nil)
}
