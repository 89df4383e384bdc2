//go:build !debug

package fiberz

func goid() uint64 {
	return 0
}

// assertInside panics if called outside the body goroutine (debug only).
func (c *Context[In, Out]) assertInside() {}
