package allocator

import icli "github.com/orizon-lang/osmem/internal/cli"

// FatalSink is consulted whenever an OS-primitive call fails; spec.md §6/§7.
// treat OS-primitive failure as unconditionally fatal, so the sink is.
// given the diagnostic and expected to terminate the process. Tests.
// substitute a sink that records instead of exiting.
type FatalSink func(err error)

// defaultFatalSink reports the diagnostic through internal/cli.ExitWithError.
// (stderr + os.Exit(1)), the same exit path cmd/osmem-inspect uses for its.
// own command-line errors.
func defaultFatalSink(err error) {
	icli.ExitWithError("%v", err)
}

// fatalIf consults the sink when failed is true, treating the sink as.
// non-returning; callers that reach past it (e.g. under a test sink).
// return the zero value to the immediate caller, which must not use it.
func (a *Allocator) fatalIf(failed bool, err error) {
	if failed {
		a.config.FatalSink(err)
	}
}
