// Package fiberz provides cooperative fibers: typed, stackful
// computations that pause at one explicit point and are resumed by the
// code driving them.
//
// A fiber runs a [Body] that receives its start argument and a
// [Context]. The body pauses by calling [Context.Yield] with an output
// value; the driver reads that value with [Fiber.YieldResult] and
// resumes the body with [Fiber.Transfer], whose argument becomes the
// return value of the pending Yield. When the body returns, the fiber
// is finished and [Fiber.Result] returns what the body returned.
//
// Fibers are created either directly with [New] or through a
// [Scheduler] with [CreateFiber]. A scheduler keeps a registry of the
// fibers it created and refuses to close while any of them is still
// alive, which catches leaked fibers at shutdown.
//
// Execution is single-threaded and cooperative. The body runs on a
// runtime coroutine, so control passes directly between the driver and
// the body and exactly one of them runs at any time. Nothing pauses a
// body except Yield.
//
// The runtime coroutine is reached through go:linkname on
// runtime.newcoro and runtime.coroswitch. Go 1.23 and later refuse that
// link unless the binary is built with -ldflags=-checklinkname=0. The
// switch also lacks the race detector annotations iter.Pull carries, so
// -race reports the hand-off between driver and body as a data race even
// when a single goroutine drives the fiber.
//
// Misuse, such as transferring into a fiber that is not yielded or
// closing a scheduler with live fibers, is a bug in the caller and
// panics with an error wrapping [ErrContractViolation]. Panics raised by
// a body are captured with their stack and re-raised in the driver.
package fiberz
