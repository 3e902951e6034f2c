//go:build 386 || amd64

package bigstack

import (
	"bytes"
	"runtime"
	"testing"

	"gate.computer/bigstack/prim"
)

func newTestRegion(t *testing.T, size int) *Region {
	t.Helper()

	r, err := NewRegion(size)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		r.Close()
	})
	return r
}

func TestCall(t *testing.T) {
	r := newTestRegion(t, 64*1024)

	n := 0
	Call(func() {
		n = 12345
	}, r)

	if n != 12345 {
		t.Fatal(n)
	}
}

func TestCallStackPointer(t *testing.T) {
	r := newTestRegion(t, 64*1024)

	var sp uintptr
	Call(func() {
		sp = prim.StackPointer()
	}, r)

	if sp > r.Top() || sp <= r.Top()-uintptr(r.Size()) {
		t.Fatalf("stack pointer %#x is outside region %#x-%#x", sp, r.Top()-uintptr(r.Size()), r.Top())
	}
}

func TestCallNesting(t *testing.T) {
	ra := newTestRegion(t, 64*1024)
	rb := newTestRegion(t, 64*1024)

	f := func(x int) int { return x*2 + 1 }

	var nested int
	Call(func() {
		Call(func() {
			nested = f(21)
		}, rb)
	}, ra)

	if direct := f(21); nested != direct {
		t.Fatalf("nested switches computed %d, direct call %d", nested, direct)
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 100

	regions := make([]*Region, depth)
	for i := range regions {
		regions[i] = newTestRegion(t, 8*1024)
	}

	sum := 0
	var descend func(i int)
	descend = func(i int) {
		if i == depth {
			return
		}
		Call(func() {
			sum++
			descend(i + 1)
		}, regions[i])
	}

	before := prim.StackPointer()
	descend(0)
	after := prim.StackPointer()

	if sum != depth {
		t.Fatal(sum)
	}
	if before != after {
		t.Fatalf("stack pointer was %#x before, %#x after", before, after)
	}
}

func TestCallPanic(t *testing.T) {
	r := newTestRegion(t, 64*1024)

	defer func() {
		if x := recover(); x != "boom" {
			t.Fatal(x)
		}
	}()

	Call(func() {
		panic("boom")
	}, r)

	t.Fatal("not reached")
}

func TestRemainingStack(t *testing.T) {
	_, before := RemainingStack()

	r := newTestRegion(t, 256*1024)

	Call(func() {
		n, ok := RemainingStack()
		if !ok {
			t.Error("no limit tracked during a switch")
		}
		if n > uintptr(r.Size()) {
			t.Errorf("%d bytes remaining on a %d byte region", n, r.Size())
		}
	}, r)

	if _, after := RemainingStack(); after != before {
		t.Fatalf("limit knowledge changed from %v to %v across a switch", before, after)
	}
}

func TestMaybeGrowInPlace(t *testing.T) {
	r := newTestRegion(t, 256*1024)

	Call(func() {
		err := MaybeGrow(4*1024, 1024*1024, func() {
			// Plenty of room: no switch, so the stack pointer stays
			// within the same region.
			sp := prim.StackPointer()
			if sp > r.Top() || sp <= r.Top()-uintptr(r.Size()) {
				t.Errorf("switched away with stack pointer %#x", sp)
			}
		})
		if err != nil {
			t.Error(err)
		}
	}, r)
}

func TestMaybeGrowSwitches(t *testing.T) {
	r := newTestRegion(t, 64*1024)

	Call(func() {
		// A red zone larger than the whole region forces a switch.
		err := MaybeGrow(1024*1024, 1024*1024, func() {
			sp := prim.StackPointer()
			if sp <= r.Top() && sp > r.Top()-uintptr(r.Size()) {
				t.Error("still on the old region")
			}
		})
		if err != nil {
			t.Error(err)
		}
	}, r)
}

func TestMaybeGrowRecursion(t *testing.T) {
	const depth = 100000

	r := newTestRegion(t, 128*1024)

	var rec func(n int) int
	rec = func(n int) int {
		if n == 0 {
			return 0
		}

		var total int
		err := MaybeGrow(32*1024, 512*1024, func() {
			total = rec(n-1) + 1
		})
		if err != nil {
			panic(err) // re-raised on the test goroutine's own stack
		}
		return total
	}

	var total int
	Call(func() {
		total = rec(depth)
	}, r)

	if total != depth {
		t.Fatal(total)
	}
}

func TestCallGC(t *testing.T) {
	r := newTestRegion(t, 256*1024)

	var data [][]byte
	Call(func() {
		for i := 0; i < 64; i++ {
			data = append(data, bytes.Repeat([]byte{byte(i)}, 1024))
			runtime.GC()
		}
	}, r)

	for i, b := range data {
		if len(b) != 1024 || b[0] != byte(i) {
			t.Fatal(i)
		}
	}
}

func TestCallLeavesLegacySlot(t *testing.T) {
	if !prim.HaveStackLimit {
		t.Skip("no legacy stack limit slot on this target")
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r := newTestRegion(t, 64*1024)

	before := prim.StackLimit()
	Call(func() {}, r)
	after := prim.StackLimit()

	if after != before {
		t.Fatalf("legacy slot changed from %#x to %#x across a switch", before, after)
	}
}

func TestRemainingStackOnGoroutineStack(t *testing.T) {
	n, ok := RemainingStack()
	if !ok {
		t.Fatal("no limit known on the goroutine stack")
	}

	g := (*gstack)(getg())
	if n == 0 || n > g.hi-g.lo {
		t.Fatalf("%d bytes remaining on a %d byte goroutine stack", n, g.hi-g.lo)
	}
}
