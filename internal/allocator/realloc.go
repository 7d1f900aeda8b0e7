package allocator

import "unsafe"

// Reallocate implements the reallocation engine (spec.md §4.6).
func (a *Allocator) Reallocate(p unsafe.Pointer, n int) unsafe.Pointer {
	if n == 0 {
		a.Free(p)

		return nil
	}

	if p == nil {
		return a.Allocate(n)
	}

	b := headerOf(p, a.headerSize)
	newPayload := uintptr(alignUp(n, a.config.AlignmentUnit))

	if b.status == StatusFree {
		// Undefined use per spec.md §4.6; not fatal. The diagnostic is.
		// built but not passed to the fatal sink or to the caller.
		_ = reallocOfFreeBlock()

		return nil
	}

	if newPayload == b.size {
		return p
	}

	if b.status == StatusMapped {
		newPtr := a.Allocate(n)
		if newPtr == nil {
			return nil
		}

		// b.size is the full mapped region including its header; the.
		// payload length is b.size - headerSize (spec.md §4.6).
		oldPayload := b.size - a.headerSize

		copySize := oldPayload
		if newPayload < copySize {
			copySize = newPayload
		}

		copyMemory(newPtr, p, copySize)
		a.Free(p)

		return newPtr
	}

	// b.status == StatusAlloc.
	if newPayload < b.size {
		a.splitRealloc(b, newPayload)

		return p
	}

	if b.hasNext() {
		if grown := a.extendRealloc(b, newPayload); grown != nil {
			return p
		}

		newPtr := a.Allocate(n)
		if newPtr == nil {
			return nil
		}

		copyMemory(newPtr, p, b.size)
		a.Free(p)

		return newPtr
	}

	// b is the last heap block: grow by advancing the program break.
	a.extendHeapTail(newPayload, b)

	return p
}

// splitRealloc shrinks b to newPayload, carving a FREE remainder out of.
// the freed tail when there is room for a header plus at least one.
// aligned payload byte; otherwise b is left untouched, keeping the.
// leftover as internal fragmentation (spec.md §4.6).
func (a *Allocator) splitRealloc(b *block, newPayload uintptr) {
	minKeepSize := newPayload + a.headerSize + uintptr(alignUp(1, a.config.AlignmentUnit))
	if b.size < minKeepSize {
		return
	}

	remainder := blockAt(b.addr() + a.headerSize + newPayload)
	remainder.size = b.size - newPayload - a.headerSize
	remainder.status = StatusFree
	remainder.next = b.next
	remainder.prev = b.addr()

	if remainder.hasNext() {
		remainder.nextBlock().prev = remainder.addr()
	}

	b.next = remainder.addr()
	b.size = newPayload
}

// extendRealloc grows b in place by coalescing its single forward.
// neighbor when FREE, then splitting off any surplus (spec.md §4.6).
// Returns b on success, nil if the merge (if any) still leaves b too.
// small — the caller then copy-relocates.
func (a *Allocator) extendRealloc(b *block, newPayload uintptr) *block {
	if next := b.nextBlock(); next != nil && next.status == StatusFree {
		b.size += next.size + a.headerSize
		b.next = next.next

		if b.hasNext() {
			b.nextBlock().prev = b.addr()
		}
	}

	if b.size < newPayload {
		return nil
	}

	a.splitRealloc(b, newPayload)

	return b
}

// copyMemory copies n bytes from src to dst via raw slice views over.
// otherwise-opaque unsafe.Pointers.
func copyMemory(dst, src unsafe.Pointer, n uintptr) {
	dstSlice := unsafe.Slice((*byte)(dst), n)
	srcSlice := unsafe.Slice((*byte)(src), n)
	copy(dstSlice, srcSlice)
}
