// Package osmock is a hand-written mock of allocator.OSPrimitives, in.
// the shape go.uber.org/mock's mockgen would generate for it. mockgen.
// itself was not run (no network access in this environment); the.
// shape below — a MockOSPrimitives embedding a *gomock.Controller plus.
// a MockOSPrimitivesMockRecorder — mirrors what mockgen emits for a.
// four-method interface.
package osmock

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockOSPrimitives is a mock of the OSPrimitives interface.
type MockOSPrimitives struct {
	ctrl     *gomock.Controller
	recorder *MockOSPrimitivesMockRecorder
}

// MockOSPrimitivesMockRecorder is the mock recorder for MockOSPrimitives.
type MockOSPrimitivesMockRecorder struct {
	mock *MockOSPrimitives
}

// NewMockOSPrimitives creates a new mock instance.
func NewMockOSPrimitives(ctrl *gomock.Controller) *MockOSPrimitives {
	mock := &MockOSPrimitives{ctrl: ctrl}
	mock.recorder = &MockOSPrimitivesMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOSPrimitives) EXPECT() *MockOSPrimitivesMockRecorder {
	return m.recorder
}

// BrkExtend mocks base method.
func (m *MockOSPrimitives) BrkExtend(delta int) (uintptr, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "BrkExtend", delta)
	ret0, _ := ret[0].(uintptr)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

// BrkExtend indicates an expected call of BrkExtend.
func (mr *MockOSPrimitivesMockRecorder) BrkExtend(delta interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BrkExtend",
		reflect.TypeOf((*MockOSPrimitives)(nil).BrkExtend), delta)
}

// MapAnon mocks base method.
func (m *MockOSPrimitives) MapAnon(length int) (uintptr, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "MapAnon", length)
	ret0, _ := ret[0].(uintptr)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

// MapAnon indicates an expected call of MapAnon.
func (mr *MockOSPrimitivesMockRecorder) MapAnon(length interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MapAnon",
		reflect.TypeOf((*MockOSPrimitives)(nil).MapAnon), length)
}

// Unmap mocks base method.
func (m *MockOSPrimitives) Unmap(base uintptr, length int) error {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "Unmap", base, length)
	ret0, _ := ret[0].(error)

	return ret0
}

// Unmap indicates an expected call of Unmap.
func (mr *MockOSPrimitivesMockRecorder) Unmap(base, length interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unmap",
		reflect.TypeOf((*MockOSPrimitives)(nil).Unmap), base, length)
}

// PageSize mocks base method.
func (m *MockOSPrimitives) PageSize() int {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "PageSize")
	ret0, _ := ret[0].(int)

	return ret0
}

// PageSize indicates an expected call of PageSize.
func (mr *MockOSPrimitivesMockRecorder) PageSize() *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PageSize",
		reflect.TypeOf((*MockOSPrimitives)(nil).PageSize))
}
