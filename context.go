package fiberz

import "log/slog"

type suspender[In, Out any] interface {
	suspend(Out) In
}

// Context is handed to a Body for the duration of one run of the body.
// It must not be retained: once the body returns, Yield panics.
type Context[In, Out any] struct {
	fiber  suspender[In, Out]
	handle Handle
	log    *slog.Logger
	goid   uint64
}

// Yield pauses the body, making out the fiber's yielded value, and
// returns control to the driver. It returns the value the driver passes
// to Fiber.Transfer when it resumes the body.
//
// If the fiber is closed while paused, Yield panics with an error
// wrapping ErrCanceled so that the rest of the body unwinds.
//
// Yield must be called on the body's own goroutine. Only builds with the
// debug tag check this: in other builds a Yield issued from another
// goroutine, or from the body of a different fiber this one is driving,
// is not detected and switches the wrong goroutine.
func (c *Context[In, Out]) Yield(out Out) In {
	if c.fiber == nil {
		violate(c.log, "Context.Yield", "context of fiber %s used after its body returned", c.handle)
	}
	c.assertInside()
	return c.fiber.suspend(out)
}
