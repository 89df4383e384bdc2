//go:build debug

package fiberz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYieldFromForeignGoroutine(t *testing.T) {
	f := New(newRuntime(), func(ctx *Context[int, int], _ int) any {
		ch := make(chan any)
		go func() {
			ch <- recovered(func() { ctx.Yield(1) })
		}()
		return <-ch
	})
	defer f.Close()

	p := f.Call(0)
	err, ok := p.(error)
	require.True(t, ok, "expected error type from panic, got %T", p)

	var v *ViolationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, "Context.Yield", v.Op)
	require.Contains(t, v.Reason, "must be called from the body")
	require.True(t, f.IsComplete())
}
