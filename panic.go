package fiberz

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// panicError carries a panic raised by a fiber body across the switch
// back to the driver, together with the body's stack at the time.
type panicError struct {
	fiber Handle
	value any
	stack []byte
}

func newPanicError(fiber Handle, v any) error {
	return &panicError{
		fiber: fiber,
		value: v,
		stack: debug.Stack(),
	}
}

func (p *panicError) Error() string {
	return fmt.Sprint(p.value)
}

// ErrorWithStack returns the panic value followed by the body's stack.
func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\nfiber %s:\n%s", p.value, p.fiber, p.stack)
}

func (p *panicError) Unwrap() error {
	if err, ok := p.value.(error); ok {
		return err
	}
	return nil
}

// DebugString renders the whole chain of wrapped errors, including the
// stacks of nested fiber panics.
func (p *panicError) DebugString() string {
	var (
		sb   strings.Builder
		seen = make(map[error]bool)
		walk func(error)
	)

	walk = func(e error) {
		if e == nil || seen[e] {
			return
		}
		seen[e] = true

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if pe, ok := e.(*panicError); ok {
			sb.WriteString(pe.ErrorWithStack())
		} else {
			sb.WriteString(e.Error())
		}

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(e))
		}
	}

	walk(p)
	return sb.String()
}
