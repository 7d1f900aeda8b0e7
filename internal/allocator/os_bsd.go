//go:build darwin || dragonfly || freebsd || openbsd || netbsd || solaris

package allocator

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// bsdOSPrimitives backs MapAnon/Unmap with golang.org/x/sys/unix the.
// same way os_unix.go does, but leaves BrkExtend unimplemented: the raw.
// brk(2) syscall this module relies on for program-break extension is a.
// Linux-only syscall number in golang.org/x/sys/unix (SYS_BRK is not.
// defined for BSD/Darwin targets), and these kernels do not expose an.
// equivalent stable syscall to call directly. Mapped allocation still.
// works everywhere map-anon's threshold routes to it.
type bsdOSPrimitives struct{}

func defaultOSPrimitives() OSPrimitives {
	return &bsdOSPrimitives{}
}

func (p *bsdOSPrimitives) BrkExtend(delta int) (uintptr, error) {
	return 0, fmt.Errorf("osmem: brk-style heap extension is not supported on this platform")
}

func (p *bsdOSPrimitives) MapAnon(length int) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}

	return uintptr(unsafe.Pointer(&b[0])), nil
}

func (p *bsdOSPrimitives) Unmap(base uintptr, length int) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(base)), length)

	return unix.Munmap(b)
}

func (p *bsdOSPrimitives) PageSize() int {
	return unix.Getpagesize()
}
