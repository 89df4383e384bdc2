package fiberz

import (
	"fmt"
	"log/slog"
)

// Body is the computation run by a fiber. It receives the argument
// passed to Start and a Context through which it pauses; what it
// returns becomes the fiber's result.
type Body[Arg, In, Out, Ret any] func(ctx *Context[In, Out], arg Arg) Ret

// Fiber is a resumable computation driven by its caller.
//
// The generic type parameters describe the values crossing the fiber
// boundary:
//   - Arg: the argument given to Start or Call
//   - In: the value given to Transfer, returned by Context.Yield
//   - Out: the value given to Context.Yield, read with YieldResult
//   - Ret: the value returned by the body, read with Result
//
// A Fiber is driven from one goroutine at a time.
type Fiber[Arg, In, Out, Ret any] struct {
	rt     *Runtime
	handle Handle
	body   Body[Arg, In, Out, Ret]
	co     *coroutine
	state  State

	arg Arg
	in  In
	out Out
	ret Ret

	// perr is a panic raised by the body, or the cancellation once the
	// fiber has been closed before finishing.
	perr error
	// cancel is set while Close unwinds a paused body.
	cancel error
}

// New creates a fiber in StateReady that runs body. The fiber is owned
// by the caller, who should Close it when done.
func New[Arg, In, Out, Ret any](rt *Runtime, body Body[Arg, In, Out, Ret]) *Fiber[Arg, In, Out, Ret] {
	if rt == nil {
		violate(logger, "New", "runtime is nil")
	}
	if body == nil {
		violate(rt.logger(), "New", "body is nil")
	}
	return &Fiber[Arg, In, Out, Ret]{
		rt:     rt,
		handle: newHandle(),
		body:   body,
	}
}

// Start runs the body with arg until it yields or returns. The fiber
// must be in StateReady.
func (f *Fiber[Arg, In, Out, Ret]) Start(arg Arg) {
	f.expect("Fiber.Start", StateReady)
	f.arg = arg
	f.co = newcoro(f.run)
	f.drive()
}

// Transfer resumes a yielded body, making in the return value of its
// pending Context.Yield, and runs it until it yields again or returns.
// The fiber must be in StateYielded.
func (f *Fiber[Arg, In, Out, Ret]) Transfer(in In) {
	f.expect("Fiber.Transfer", StateYielded)
	f.in = in
	f.drive()
}

// Call runs a body that is not expected to pause and returns its
// result. It panics if the body yields.
func (f *Fiber[Arg, In, Out, Ret]) Call(arg Arg) Ret {
	f.Start(arg)
	if f.state == StateYielded {
		violate(
			f.log(), "Fiber.Call",
			"body of fiber %s yielded %v, use Start and Transfer for bodies that pause",
			f.handle, f.out,
		)
	}
	return f.Result()
}

// Result returns the value the body returned. The fiber must be in
// StateFinished. If the body panicked or the fiber was closed before
// finishing, Result re-raises that panic.
func (f *Fiber[Arg, In, Out, Ret]) Result() Ret {
	f.expect("Fiber.Result", StateFinished)
	if f.perr != nil {
		panic(f.perr)
	}
	return f.ret
}

// YieldResult returns the value passed to the pending Context.Yield.
// The fiber must be in StateYielded.
func (f *Fiber[Arg, In, Out, Ret]) YieldResult() Out {
	f.expect("Fiber.YieldResult", StateYielded)
	return f.out
}

// IsComplete reports whether the fiber is in StateFinished.
func (f *Fiber[Arg, In, Out, Ret]) IsComplete() bool {
	return f.state == StateFinished
}

// IsYielded reports whether the fiber is in StateYielded.
func (f *Fiber[Arg, In, Out, Ret]) IsYielded() bool {
	return f.state == StateYielded
}

// State returns the fiber's lifecycle state.
func (f *Fiber[Arg, In, Out, Ret]) State() State {
	return f.state
}

// Handle returns the fiber's registry handle.
func (f *Fiber[Arg, In, Out, Ret]) Handle() Handle {
	return f.handle
}

// Runtime returns the runtime the fiber was created with.
func (f *Fiber[Arg, In, Out, Ret]) Runtime() *Runtime {
	return f.rt
}

// Close releases the fiber's coroutine.
//
// A yielded body is unwound: its pending Context.Yield panics with an
// error wrapping ErrCanceled, so deferred calls in the body run and the
// rest of the body is abandoned. A fiber closed before finishing ends in
// StateFinished and its Result panics with that error. Closing a
// finished fiber does nothing. If the body raises a different panic
// while unwinding, Close re-raises it.
func (f *Fiber[Arg, In, Out, Ret]) Close() {
	switch f.state {
	case StateReady:
		f.perr = fmt.Errorf("%w", ErrCanceled)
		f.state = StateFinished
		f.log().Debug("fiber canceled before start")
	case StateYielded:
		canceled := fmt.Errorf("%w", ErrCanceled)
		f.cancel = canceled
		f.state = stateRunning
		coroswitch(f.co)
		if f.perr != nil {
			f.co = nil
			panic(f.perr)
		}
		f.perr = canceled
		f.log().Debug("fiber canceled while yielded")
	case stateRunning:
		violate(f.log(), "Fiber.Close", "fiber %s closed from inside its own body", f.handle)
	}
	f.co = nil
}

func (f *Fiber[Arg, In, Out, Ret]) drive() {
	f.state = stateRunning
	coroswitch(f.co)
	if f.perr != nil {
		panic(f.perr)
	}
}

func (f *Fiber[Arg, In, Out, Ret]) run(*coroutine) {
	ctx := &Context[In, Out]{
		fiber:  f,
		handle: f.handle,
		log:    f.rt.logger(),
		goid:   goid(),
	}

	defer func() {
		ctx.fiber = nil
		if p := recover(); p != nil {
			if err, ok := p.(error); !ok || f.cancel == nil || err != f.cancel {
				f.perr = newPanicError(f.handle, p)
			}
		}
		f.state = StateFinished
	}()

	f.ret = f.body(ctx, f.arg)
}

func (f *Fiber[Arg, In, Out, Ret]) suspend(out Out) In {
	if f.cancel != nil {
		panic(f.cancel)
	}
	if f.state != stateRunning {
		violate(f.log(), "Context.Yield", "fiber %s is %s, yield is only valid while its body runs", f.handle, f.state)
	}
	f.out = out
	f.state = StateYielded
	coroswitch(f.co)
	if f.cancel != nil {
		panic(f.cancel)
	}
	return f.in
}

func (f *Fiber[Arg, In, Out, Ret]) expect(op string, want State) {
	if f.state != want {
		violate(f.log(), op, "fiber %s must be %s, is %s", f.handle, want, f.state)
	}
}

func (f *Fiber[Arg, In, Out, Ret]) log() *slog.Logger {
	return f.rt.logger().With(slog.String("fiber", f.handle.String()))
}
