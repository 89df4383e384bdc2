//go:build debug

package fiberz

import (
	"fmt"
	"runtime"
)

func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// "goroutine 123 [running]:\n"
	var id uint64
	_, _ = fmt.Sscanf(string(buf[:n]), "goroutine %d ", &id)
	return id
}

// assertInside panics if called outside the body goroutine (debug only).
func (c *Context[In, Out]) assertInside() {
	if id := goid(); c.goid != id {
		violate(
			c.log, "Context.Yield",
			"must be called from the body of fiber %s (goroutine %d), called from goroutine %d",
			c.handle, c.goid, id,
		)
	}
}
