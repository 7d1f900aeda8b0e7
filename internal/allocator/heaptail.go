package allocator

// extendHeapTail grows the last heap block in place by advancing the.
// program break (spec.md §4.5). It has two modes, selected by target:
//
//   - target == nil: the non-realloc path. Walks to the last entry of.
//     the list; if it is FREE, extends it to hold total bytes.
//     (header included) and returns it as ALLOC. Returns nil if the.
//     last entry is not FREE.
//
//   - target != nil: the realloc path. target is already known to be.
//     the last heap block (spec.md §4.6 only calls this when target has.
//     no successor). Grows target's payload to total (here total is the.
//     new payload size, not header-inclusive — see Reallocate).
//
// On syscall failure the fatal sink is consulted (and, in production,.
// does not return).
func (a *Allocator) extendHeapTail(total uintptr, target *block) *block {
	if target != nil {
		delta := int(total) - int(target.size)

		_, err := a.config.OS.BrkExtend(delta)
		if err != nil {
			a.fatalIf(true, syscallFailure("brk-extend", delta, err))

			return nil
		}

		target.size = total
		target.status = StatusAlloc

		return target
	}

	tail := a.listHead
	if tail == nil {
		return nil
	}

	for tail.hasNext() {
		tail = tail.nextBlock()
	}

	if tail.status != StatusFree {
		return nil
	}

	delta := int(total) - int(a.headerSize) - int(tail.size)

	_, err := a.config.OS.BrkExtend(delta)
	if err != nil {
		a.fatalIf(true, syscallFailure("brk-extend", delta, err))

		return nil
	}

	tail.size = total - a.headerSize
	tail.status = StatusAlloc

	return tail
}
