package allocator

// Size thresholds fixed by the allocation policy (spec.md §3.4).
const (
	// heapThreshold is the boundary at or above which a non-zero-fill.
	// request (header included) is serviced by mapping rather than by.
	// the heap.
	heapThreshold = 128 * 1024

	// preallocQuantum is the size of the first heap reservation.
	preallocQuantum = 128 * 1024

	// alignmentUnit is the granularity every payload size is rounded up to.
	alignmentUnit = 8
)

// Config carries the knobs this allocator exposes. The zero value is.
// not ready for use; construct one with defaultConfig and Options.
type Config struct {
	OS              OSPrimitives
	FatalSink       FatalSink
	PageSize        int
	HeapThreshold   int
	PreallocQuantum int
	AlignmentUnit   int
}

// Option mutates a Config during construction.
type Option func(*Config)

func defaultConfig() *Config {
	os := defaultOSPrimitives()

	return &Config{
		OS:              os,
		FatalSink:       defaultFatalSink,
		PageSize:        os.PageSize(),
		HeapThreshold:   heapThreshold,
		PreallocQuantum: preallocQuantum,
		AlignmentUnit:   alignmentUnit,
	}
}

// WithOSPrimitives overrides the OS-primitive collaborator, letting.
// tests substitute a mock for brk-extend/map-anon/unmap.
func WithOSPrimitives(os OSPrimitives) Option {
	return func(c *Config) {
		c.OS = os
		c.PageSize = os.PageSize()
	}
}

// WithFatalSink overrides the sink consulted on OS-primitive failure.
func WithFatalSink(sink FatalSink) Option {
	return func(c *Config) { c.FatalSink = sink }
}

// WithHeapThreshold overrides the non-zero-fill mapped/heap boundary.
func WithHeapThreshold(n int) Option {
	return func(c *Config) { c.HeapThreshold = n }
}

// WithPreallocQuantum overrides the first heap-backed request's size.
func WithPreallocQuantum(n int) Option {
	return func(c *Config) { c.PreallocQuantum = n }
}

// WithAlignmentUnit overrides the rounding granularity for payload sizes.
func WithAlignmentUnit(n int) Option {
	return func(c *Config) { c.AlignmentUnit = n }
}

// alignUp rounds n up to the nearest multiple of unit. unit must be a.
// power of two.
func alignUp(n, unit int) int {
	return (n + unit - 1) &^ (unit - 1)
}
