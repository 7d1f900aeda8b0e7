package allocator

import (
	"testing"
	"unsafe"
)

// TestFirstRequestTriggersPreallocation covers spec.md §8 scenario 1.
func TestFirstRequestTriggersPreallocation(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.Allocate(100)
	if p == nil {
		t.Fatal("Allocate(100) returned nil")
	}

	b := headerOf(p, a.headerSize)
	wantPayload := uintptr(a.config.PreallocQuantum) - a.headerSize

	if b.size != wantPayload {
		t.Errorf("payload size = %d, want %d", b.size, wantPayload)
	}

	if b.status != StatusAlloc {
		t.Errorf("status = %v, want ALLOC", b.status)
	}

	if !a.HeapPreallocated() {
		t.Error("HeapPreallocated() = false after first heap request")
	}
}

// TestSplitOnBestFit covers spec.md §8 scenario 2.
func TestSplitOnBestFit(t *testing.T) {
	a, _ := newTestAllocator()

	p1 := a.Allocate(100)
	a.Free(p1)

	p2 := a.Allocate(200)
	if p2 == nil {
		t.Fatal("Allocate(200) returned nil")
	}

	b2 := headerOf(p2, a.headerSize)
	if b2.status != StatusAlloc {
		t.Fatalf("status = %v, want ALLOC", b2.status)
	}

	if !b2.hasNext() {
		t.Fatal("expected a FREE remainder block after split")
	}

	remainder := b2.nextBlock()
	if remainder.status != StatusFree {
		t.Errorf("remainder status = %v, want FREE", remainder.status)
	}
}

// TestCoalesceThreeBlocks covers spec.md §8 scenario 3.
func TestCoalesceThreeBlocks(t *testing.T) {
	a, _ := newTestAllocator()

	// The first Allocate call always consumes the whole prealloc.
	// quantum unsplit (spec.md §4.3 step 4a); free it and re-split it.
	// into the three blocks the scenario actually needs.
	p0 := a.Allocate(64)
	a.Free(p0)

	p1 := a.Allocate(64)
	p2 := a.Allocate(64)
	p3 := a.Allocate(64)

	a.Free(p1)
	a.Free(p3)
	a.Free(p2)

	p4 := a.Allocate(200)
	if p4 == nil {
		t.Fatal("Allocate(200) returned nil")
	}

	b4 := headerOf(p4, a.headerSize)
	if b4.status != StatusAlloc {
		t.Errorf("status = %v, want ALLOC", b4.status)
	}
}

// TestMappedRegime covers spec.md §8 scenario 4.
func TestMappedRegime(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.Allocate(200000)
	if p == nil {
		t.Fatal("Allocate(200000) returned nil")
	}

	b := headerOf(p, a.headerSize)
	if b.status != StatusMapped {
		t.Fatalf("status = %v, want MAPPED", b.status)
	}

	wantSize := uintptr(alignUp(200000, a.config.AlignmentUnit)) + a.headerSize
	if b.size != wantSize {
		t.Errorf("size = %d, want %d", b.size, wantSize)
	}

	a.Free(p)

	for cur := a.listHead; cur != nil; cur = cur.nextBlock() {
		if cur == b {
			t.Error("mapped block still present in list after free")
		}
	}
}

// TestReallocateShrink covers spec.md §8 scenario 5.
func TestReallocateShrink(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.Allocate(1000)
	p2 := a.Reallocate(p, 100)

	if p2 != p {
		t.Fatalf("Reallocate returned a different pointer for an in-place shrink")
	}

	b := headerOf(p2, a.headerSize)
	if !b.hasNext() {
		t.Fatal("expected a FREE remainder after shrink")
	}

	if b.nextBlock().status != StatusFree {
		t.Errorf("remainder status = %v, want FREE", b.nextBlock().status)
	}
}

// TestReallocateGrowByCoalescing covers spec.md §8 scenario 6.
func TestReallocateGrowByCoalescing(t *testing.T) {
	a, _ := newTestAllocator()

	// Bootstrap past the first-request-gets-the-whole-quantum quirk.
	// (spec.md §4.3 step 4a) so p1/p2 below are ordinarily-sized,.
	// list-adjacent blocks instead of one giant block.
	dummy := a.Allocate(8)
	a.Free(dummy)

	p1 := a.Allocate(100)
	p2 := a.Allocate(100)
	a.Free(p2)

	grown := a.Reallocate(p1, 180)
	if grown != p1 {
		t.Fatalf("Reallocate did not return the original pointer")
	}

	b := headerOf(grown, a.headerSize)
	if b.size < 180 {
		t.Errorf("grown payload = %d, want >= 180", b.size)
	}
}

// TestBoundaryBehaviors covers spec.md §8's boundary behavior table.
func TestBoundaryBehaviors(t *testing.T) {
	a, _ := newTestAllocator()

	if p := a.Allocate(0); p != nil {
		t.Error("Allocate(0) should return nil")
	}

	if p := a.AllocateZero(0, 8); p != nil {
		t.Error("AllocateZero(0, 8) should return nil")
	}

	if p := a.AllocateZero(8, 0); p != nil {
		t.Error("AllocateZero(8, 0) should return nil")
	}

	a.Free(nil) // must not panic.

	if p := a.Reallocate(nil, 16); p == nil {
		t.Error("Reallocate(nil, 16) should behave like Allocate(16)")
	}

	p := a.Allocate(32)
	if r := a.Reallocate(p, 0); r != nil {
		t.Error("Reallocate(p, 0) should return nil")
	}

	b := headerOf(p, a.headerSize)
	if b.status != StatusFree {
		t.Error("Reallocate(p, 0) should have freed p")
	}
}

// TestReallocateOfFreeBlockReturnsNil exercises the documented.
// undefined-use guard in spec.md §4.6.
func TestReallocateOfFreeBlockReturnsNil(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.Allocate(64)
	a.Free(p)

	if r := a.Reallocate(p, 128); r != nil {
		t.Error("Reallocate on a FREE block should return nil")
	}
}

// TestReallocateSameSizeIsNoop covers law L2.
func TestReallocateSameSizeIsNoop(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.Allocate(64)
	b := headerOf(p, a.headerSize)
	originalSize := b.size

	r := a.Reallocate(p, int(originalSize))
	if r != p {
		t.Error("Reallocate with an unchanged aligned size must return the same pointer")
	}
}

// TestReallocatePreservesContents covers law L3.
func TestReallocatePreservesContents(t *testing.T) {
	a, _ := newTestAllocator()

	dummy := a.Allocate(8)
	a.Free(dummy)

	p := a.Allocate(64)
	_ = a.Allocate(64) // filler: occupies the block right after p, so p.
	// has no FREE forward neighbor to grow into in place.

	src := unsafe.Slice((*byte)(p), 64)
	for i := range src {
		src[i] = byte(i)
	}

	grown := a.Reallocate(p, 200000) // no in-place room: forces a copy-relocation.
	if grown == p {
		t.Fatal("expected Reallocate to relocate when it cannot grow in place")
	}

	dst := unsafe.Slice((*byte)(grown), 64)

	for i := range dst {
		if dst[i] != byte(i) {
			t.Fatalf("byte %d corrupted after reallocate: got %d want %d", i, dst[i], byte(i))
		}
	}
}

// TestZeroFillAllZeroBytes covers law L4.
func TestZeroFillAllZeroBytes(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.AllocateZero(64, 8)
	if p == nil {
		t.Fatal("AllocateZero(64, 8) returned nil")
	}

	data := unsafe.Slice((*byte)(p), 64*8)
	for i, v := range data {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
}

// TestDoubleFreeIsNoop covers SPEC_FULL.md §C.3's resolution of the.
// double-free open question.
func TestDoubleFreeIsNoop(t *testing.T) {
	a, _ := newTestAllocator()

	p := a.Allocate(64)
	a.Free(p)

	b := headerOf(p, a.headerSize)
	if b.status != StatusFree {
		t.Fatal("first free should mark the block FREE")
	}

	a.Free(p) // must not panic or corrupt the list.

	if b.status != StatusFree {
		t.Error("double free changed status away from FREE")
	}
}
