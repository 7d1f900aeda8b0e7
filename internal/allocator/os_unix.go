//go:build linux

package allocator

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// unixOSPrimitives implements OSPrimitives via golang.org/x/sys/unix,.
// the same package the host tree's internal/runtime/asyncio files use.
// for raw syscalls (see zerocopy_unix_splice.go).
//
// Go's standard library does not expose sbrk/brk — the Go runtime owns.
// the program break on most platforms — so BrkExtend talks to the raw.
// SYS_BRK syscall directly and tracks the current break itself, the.
// way the C source's sbrk() wrapper implicitly relies on the libc break.
// cursor.
type unixOSPrimitives struct {
	mu        sync.Mutex
	brk       uintptr
	brkInited bool
}

func defaultOSPrimitives() OSPrimitives {
	return &unixOSPrimitives{}
}

func (p *unixOSPrimitives) currentBreakLocked() (uintptr, error) {
	if p.brkInited {
		return p.brk, nil
	}

	// brk(0) (delta encoded as "pass the current break back") queries.
	// the current break without moving it.
	r1, _, errno := unix.Syscall(unix.SYS_BRK, 0, 0, 0)
	if errno != 0 {
		return 0, errno
	}

	p.brk = r1
	p.brkInited = true

	return p.brk, nil
}

func (p *unixOSPrimitives) BrkExtend(delta int) (uintptr, error) {
	if delta < 0 {
		return 0, fmt.Errorf("osmem: BrkExtend called with negative delta %d", delta)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	cur, err := p.currentBreakLocked()
	if err != nil {
		return 0, err
	}

	want := cur + uintptr(delta)

	r1, _, errno := unix.Syscall(unix.SYS_BRK, want, 0, 0)
	if errno != 0 {
		return 0, errno
	}

	// The kernel's brk(2) reports the resulting break regardless of.
	// whether the request succeeded; detect failure by the break not.
	// having moved to (at least) what was requested.
	if r1 < want {
		return 0, fmt.Errorf("osmem: brk failed to extend heap by %d bytes", delta)
	}

	p.brk = r1

	return cur, nil
}

func (p *unixOSPrimitives) MapAnon(length int) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}

	return uintptr(unsafe.Pointer(&b[0])), nil
}

func (p *unixOSPrimitives) Unmap(base uintptr, length int) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)

	return unix.Munmap(b)
}

func (p *unixOSPrimitives) PageSize() int {
	return unix.Getpagesize()
}
