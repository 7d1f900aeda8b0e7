package allocator

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/orizon-lang/osmem/internal/allocator/osmock"
)

// TestBrkFailureReachesFatalSink exercises osmock.MockOSPrimitives.
// directly, asserting that a BrkExtend failure is reported to the.
// configured FatalSink as a CategorySystem StandardError (spec.md §6/§7).
func TestBrkFailureReachesFatalSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOS := osmock.NewMockOSPrimitives(ctrl)

	// WithOSPrimitives reads the page size from the collaborator.
	mockOS.EXPECT().PageSize().Return(4096).AnyTimes()

	cause := errors.New("mock: brk denied")
	mockOS.EXPECT().BrkExtend(gomock.Any()).Return(uintptr(0), cause)

	var captured error
	sink := FatalSink(func(err error) { captured = err })

	a := New(WithOSPrimitives(mockOS), WithFatalSink(sink))

	p := a.Allocate(100) // first heap request always triggers BrkExtend.
	if p != nil {
		t.Fatal("Allocate should return nil when BrkExtend fails")
	}

	if captured == nil {
		t.Fatal("fatal sink was never invoked")
	}

	var stdErr *StandardError
	if !errors.As(captured, &stdErr) {
		t.Fatalf("captured error is not a *StandardError: %v", captured)
	}

	if stdErr.Category != CategorySystem {
		t.Errorf("category = %v, want %v", stdErr.Category, CategorySystem)
	}
}

// TestMapAnonFailureReachesFatalSink covers the same path for the.
// mapped-allocation regime.
func TestMapAnonFailureReachesFatalSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOS := osmock.NewMockOSPrimitives(ctrl)

	mockOS.EXPECT().PageSize().Return(4096).AnyTimes()

	cause := errors.New("mock: mmap denied")
	mockOS.EXPECT().MapAnon(gomock.Any()).Return(uintptr(0), cause)

	var captured error
	sink := FatalSink(func(err error) { captured = err })

	a := New(WithOSPrimitives(mockOS), WithFatalSink(sink), WithHeapThreshold(64))

	p := a.Allocate(200000) // well above the lowered threshold, forces MapAnon.
	if p != nil {
		t.Fatal("Allocate should return nil when MapAnon fails")
	}

	var stdErr *StandardError
	if !errors.As(captured, &stdErr) {
		t.Fatalf("captured error is not a *StandardError: %v", captured)
	}

	if stdErr.Category != CategorySystem {
		t.Errorf("category = %v, want %v", stdErr.Category, CategorySystem)
	}
}
