package allocator

import "unsafe"

// Status tags the three states a block can be in (spec.md §3.1). A.
// sum type rather than a bare int, per spec.md §9's "tagged status"
// design note, is simulated in Go with a defined type plus the three.
// constants below; any other value prints as "UNKNOWN".
type Status uint8

const (
	// StatusFree marks a heap block available for reuse by best_fit.
	StatusFree Status = iota
	// StatusAlloc marks a heap block currently handed out to a caller.
	StatusAlloc
	// StatusMapped marks a block backed by an anonymous mapping; it.
	// never transitions to StatusFree — free() unmaps and detaches it.
	StatusMapped
)

func (s Status) String() string {
	switch s {
	case StatusFree:
		return "FREE"
	case StatusAlloc:
		return "ALLOC"
	case StatusMapped:
		return "MAPPED"
	default:
		return "UNKNOWN"
	}
}

// block is the in-band metadata header embedded at the base of every.
// block, free or in use (spec.md §3.1). It lives in raw OS memory.
// (brk'd or mmap'd), never in Go-GC-managed memory, so storing.
// addresses as uintptr rather than as typed pointers is safe here: this.
// memory is never moved or reclaimed by the Go garbage collector, and.
// nothing needs to keep it alive on the GC's behalf.
//
// size means different things for heap and mapped blocks — see heap.go.
type block struct {
	size   uintptr
	status Status
	prev   uintptr // address of the previous block's header, or 0.
	next   uintptr // address of the next block's header, or 0.
}

// blockAt reinterprets addr as a block header. addr must be the base of.
// a block this allocator created.
func blockAt(addr uintptr) *block {
	return (*block)(unsafe.Pointer(addr)) //nolint:govet // raw OS memory, not GC-managed.
}

// addr returns the address of b's own header.
func (b *block) addr() uintptr {
	return uintptr(unsafe.Pointer(b))
}

// payloadAddr returns the user-visible address: immediately after the.
// header.
func (b *block) payloadAddr(headerSize uintptr) uintptr {
	return b.addr() + headerSize
}

// payload returns the user-visible pointer for the public API surface.
func (b *block) payload(headerSize uintptr) unsafe.Pointer {
	return unsafe.Pointer(b.payloadAddr(headerSize)) //nolint:govet
}

// headerOf recovers the header of the block that produced the given.
// user pointer.
func headerOf(payload unsafe.Pointer, headerSize uintptr) *block {
	return blockAt(uintptr(payload) - headerSize)
}

// hasNext/hasPrev report list-adjacency, since 0 doubles as "absent".
// address zero is never a valid block address (BrkExtend/MapAnon never.
// return it on success).
func (b *block) hasNext() bool { return b.next != 0 }
func (b *block) hasPrev() bool { return b.prev != 0 }

func (b *block) nextBlock() *block {
	if !b.hasNext() {
		return nil
	}

	return blockAt(b.next)
}

func (b *block) prevBlock() *block {
	if !b.hasPrev() {
		return nil
	}

	return blockAt(b.prev)
}

// insertTail appends newBlock to the end of the list rooted at head,.
// returning the (possibly unchanged) head. First insertion becomes the.
// head (spec.md §4.1).
func insertTail(head *block, newBlock *block) *block {
	newBlock.next = 0

	if head == nil {
		newBlock.prev = 0

		return newBlock
	}

	tail := head
	for tail.hasNext() {
		tail = tail.nextBlock()
	}

	tail.next = newBlock.addr()
	newBlock.prev = tail.addr()

	return head
}

// detach unlinks b from the list rooted at head, fixing neighbors'.
// links, and returns the (possibly changed) head. Only ever called for.
// MAPPED blocks on free (spec.md §4.1) — heap blocks are never removed.
func detach(head *block, b *block) *block {
	prev := b.prevBlock()
	next := b.nextBlock()

	if prev != nil {
		prev.next = b.next
	}

	if next != nil {
		next.prev = b.prev
	}

	if head == b {
		head = next
	}

	b.prev, b.next = 0, 0

	return head
}
