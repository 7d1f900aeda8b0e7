package allocator

import (
	"errors"
	"unsafe"
)

// fakeOS is a real-memory-backed OSPrimitives double: BrkExtend bumps.
// an offset into a preallocated Go byte slice, and MapAnon returns.
// freshly-made byte slices kept alive in a map (so the allocator can.
// read and write through the returned addresses exactly as it would.
// over a real heap/mapping). Failure injection is all-or-nothing per.
// call via the brkFail/mapFail/unmapFail switches; the fatal-sink tests.
// in fatal_test.go use osmock instead and leave these switches unset.
type fakeOS struct {
	arena     []byte
	arenaBase uintptr
	brkOff    uintptr
	mapped    map[uintptr][]byte
	page      int

	brkFail   bool
	mapFail   bool
	unmapFail bool
}

func newFakeOS(arenaSize int) *fakeOS {
	arena := make([]byte, arenaSize)

	return &fakeOS{
		arena:     arena,
		arenaBase: uintptr(unsafe.Pointer(&arena[0])),
		mapped:    make(map[uintptr][]byte),
		page:      4096,
	}
}

func (f *fakeOS) BrkExtend(delta int) (uintptr, error) {
	if f.brkFail {
		return 0, errors.New("fakeOS: simulated brk failure")
	}

	if delta < 0 {
		return 0, errors.New("fakeOS: negative delta")
	}

	if f.brkOff+uintptr(delta) > uintptr(len(f.arena)) {
		return 0, errors.New("fakeOS: simulated heap exhaustion")
	}

	prev := f.arenaBase + f.brkOff
	f.brkOff += uintptr(delta)

	return prev, nil
}

func (f *fakeOS) MapAnon(length int) (uintptr, error) {
	if f.mapFail {
		return 0, errors.New("fakeOS: simulated mmap failure")
	}

	b := make([]byte, length)
	base := uintptr(unsafe.Pointer(&b[0]))
	f.mapped[base] = b

	return base, nil
}

func (f *fakeOS) Unmap(base uintptr, length int) error {
	if f.unmapFail {
		return errors.New("fakeOS: simulated munmap failure")
	}

	if _, ok := f.mapped[base]; !ok {
		return errors.New("fakeOS: unmap of unknown mapping")
	}

	delete(f.mapped, base)

	return nil
}

func (f *fakeOS) PageSize() int { return f.page }

// newTestAllocator returns an Allocator wired to a fakeOS with a roomy.
// arena, the default-sized thresholds unless overridden.
func newTestAllocator(opts ...Option) (*Allocator, *fakeOS) {
	os := newFakeOS(8 * 1024 * 1024)

	allOpts := append([]Option{WithOSPrimitives(os)}, opts...)

	return New(allOpts...), os
}
