package fiberz_test

import (
	"fmt"

	"github.com/balloneij/fiberz"
)

func Example() {
	s := fiberz.NewScheduler()
	defer s.Close()

	// Yields a value, then adds whatever it is resumed with to its argument.
	f := fiberz.CreateFiber(s, func(ctx *fiberz.Context[int, int], y int) int {
		x := ctx.Yield(3)
		return x + y
	})
	defer s.DestroyFiber(f)

	f.Start(2)
	fmt.Println(f.IsYielded(), f.YieldResult())

	f.Transfer(5)
	fmt.Println(f.IsComplete(), f.Result())
	// Output:
	// true 3
	// true 7
}

func ExampleFiber_Call() {
	s := fiberz.NewScheduler()
	defer s.Close()

	f := fiberz.CreateFiber(s, func(_ *fiberz.Context[struct{}, struct{}], x int) int {
		return x + 1
	})
	defer s.DestroyFiber(f)

	fmt.Println(f.Call(1))
	// Output: 2
}

func ExampleContext_Yield() {
	s := fiberz.NewScheduler()
	defer s.Close()

	// A generator: yields Fibonacci numbers until told to stop.
	fib := fiberz.CreateFiber(s, func(ctx *fiberz.Context[bool, int], _ struct{}) int {
		a, b, n := 0, 1, 0
		for ctx.Yield(a) {
			a, b = b, a+b
			n++
		}
		return n
	})
	defer s.DestroyFiber(fib)

	var nums []int
	fib.Start(struct{}{})
	for i := 0; i < 8; i++ {
		nums = append(nums, fib.YieldResult())
		fib.Transfer(i < 7)
	}
	fmt.Println(nums)
	fmt.Println("produced", fib.Result())
	// Output:
	// [0 1 1 2 3 5 8 13]
	// produced 7
}
