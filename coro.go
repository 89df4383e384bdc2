package fiberz

import (
	"errors"
	"unsafe"
)

var (
	// ErrCanceled is raised inside a body whose fiber is closed while it
	// is yielded, and by Result on a fiber that was closed before it
	// could finish.
	ErrCanceled = errors.New("fiberz: fiber canceled")
	_           unsafe.Pointer
)

// coroutine is the runtime's native coroutine. It's an opaque struct
// used by the runtime functions and holds the stack of a paused body.
type coroutine struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coroutine)) *coroutine

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coroutine)
