package allocator

import "unsafe"

// Allocator is the process-wide allocator state: the Block List head.
// and the preallocation flag (spec.md §3.3), encapsulated in a value.
// per spec.md §9 rather than left as package-level globals. The.
// package-level convenience functions below wrap a single default.
// instance for ABI-style parameterless callers.
type Allocator struct {
	config           *Config
	headerSize       uintptr
	listHead         *block
	heapPreallocated bool
}

// New constructs an Allocator ready for use.
func New(opts ...Option) *Allocator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Allocator{
		config:     cfg,
		headerSize: uintptr(alignUp(int(unsafe.Sizeof(block{})), cfg.AlignmentUnit)),
	}
}

// Free implements spec.md §4.6's free(p): a no-op on a nil pointer, a.
// transition to FREE for an ALLOC heap block (lazily coalesced at the.
// next allocation), and an unmap-and-detach for a MAPPED block. Free on.
// an already-FREE heap block is a silent no-op (SPEC_FULL.md §C.3).
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}

	b := headerOf(p, a.headerSize)

	switch b.status {
	case StatusAlloc:
		b.status = StatusFree
	case StatusMapped:
		a.listHead = detach(a.listHead, b)

		if err := a.config.OS.Unmap(b.addr(), int(b.size)); err != nil {
			a.fatalIf(true, syscallFailure("unmap", int(b.size), err))
		}
	case StatusFree:
		// Double free: a no-op, matching the C source's unconditional.
		// status = STATUS_FREE (SPEC_FULL.md §C.3).
	}
}

// HeapPreallocated reports whether the first heap-backed request has.
// already run (for tests and introspection).
func (a *Allocator) HeapPreallocated() bool {
	return a.heapPreallocated
}

// Default is the process-wide singleton the package-level Allocate/.
// Free/Reallocate/AllocateZero functions operate on.
var Default = New()

// Allocate allocates n bytes using the default Allocator.
func Allocate(n int) unsafe.Pointer { return Default.Allocate(n) }

// AllocateZero allocates a zeroed count*elem-byte region using the.
// default Allocator.
func AllocateZero(count, elem int) unsafe.Pointer { return Default.AllocateZero(count, elem) }

// Free releases p using the default Allocator.
func Free(p unsafe.Pointer) { Default.Free(p) }

// Reallocate resizes p to n bytes using the default Allocator.
func Reallocate(p unsafe.Pointer, n int) unsafe.Pointer { return Default.Reallocate(p, n) }
