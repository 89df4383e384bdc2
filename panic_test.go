package fiberz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// multiError unwraps to several errors.
type multiError struct {
	errs []error
}

func (m *multiError) Error() string {
	return "multiple errors"
}

func (m *multiError) Unwrap() []error {
	return m.errs
}

// selfReferentialError unwraps to itself.
type selfReferentialError struct {
	err error
	msg string
}

func (s *selfReferentialError) Error() string {
	return s.msg
}

func (s *selfReferentialError) Unwrap() error {
	return s.err
}

type debugStringer interface {
	DebugString() string
}

func TestDebugStringWithMultipleErrors(t *testing.T) {
	r := require.New(t)

	multiErr := &multiError{errs: []error{
		errors.New("inner error 1"),
		errors.New("inner error 2"),
	}}
	pErr := &panicError{
		fiber: newHandle(),
		value: multiErr,
		stack: []byte("mock stack"),
	}

	debugStr := pErr.DebugString()
	r.Contains(debugStr, "multiple errors")
	r.Contains(debugStr, "inner error 1")
	r.Contains(debugStr, "inner error 2")
	r.Contains(debugStr, "mock stack")
}

func TestDebugStringWithCircularReference(t *testing.T) {
	r := require.New(t)

	selfErr := &selfReferentialError{msg: "self error"}
	selfErr.err = selfErr

	pErr := &panicError{
		fiber: newHandle(),
		value: selfErr,
		stack: []byte("mock stack"),
	}

	debugStr := pErr.DebugString()
	r.Equal(2, strings.Count(debugStr, "self error"))
	r.Contains(debugStr, "mock stack")
}

func TestPanicErrorUnwrapNonError(t *testing.T) {
	pErr := &panicError{value: "not an error"}
	require.Nil(t, pErr.Unwrap())
}

func TestPanicErrorMethods(t *testing.T) {
	r := require.New(t)

	h := newHandle()
	errValue := fmt.Errorf("test error")
	pErr := &panicError{
		fiber: h,
		value: errValue,
		stack: []byte("mock stack"),
	}

	r.Equal("test error", pErr.Error())
	r.Contains(pErr.ErrorWithStack(), "test error")
	r.Contains(pErr.ErrorWithStack(), "mock stack")
	r.Contains(pErr.ErrorWithStack(), h.String())
	r.Equal(errValue, pErr.Unwrap())
}

func TestBodyPanicCarriesStack(t *testing.T) {
	f := New(newRuntime(), func(ctx *Context[int, int], _ int) int {
		ctx.Yield(0)
		panic(errors.New("body failed"))
	})
	defer f.Close()

	f.Start(0)
	p := recovered(func() { f.Transfer(0) })

	ds, ok := p.(debugStringer)
	require.True(t, ok, "expected error with DebugString method, got %T", p)

	msg := ds.DebugString()
	require.Contains(t, msg, "body failed")
	require.Contains(t, msg, "panic_test.go:")
	require.Contains(t, msg, f.Handle().String())
}
