// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64

package bigstack

import (
	"runtime"
	"sync"
	"unsafe"

	"gate.computer/bigstack/prim"
)

// Fallback distance between the low end of a stack and the point where a Go
// function prologue diverts to the stack growth path.  This is the go1.21
// runtime's guard and moves with the toolchain, so Call prefers the distance
// observed on the live goroutine and uses the constant only when the observed
// value is poisoned.
const stackGuardCushion = 928

// gstack is the layout of the stack bounds at the head of a runtime g.
// Runtime assembly depends on these offsets, so they are stable.
type gstack struct {
	lo          uintptr
	hi          uintptr
	stackguard0 uintptr
	stackguard1 uintptr
}

// invocation carries a Go closure through Switch's single opaque argument.
// The funcval must stay at offset zero; the entry trampoline loads it from
// there.
type invocation struct {
	f        func()
	region   *Region
	done     bool
	panicked interface{}
}

// Stack scans stop at the bridge's entry thunk, so objects reachable only
// through the switched-away part of the original stack are invisible to the
// collector.  Everything the switched closure can reach is anchored here
// until the switch returns.
var (
	liveMu sync.Mutex
	live   = make(map[*invocation]struct{})
)

func getg() unsafe.Pointer

// entryAddr returns the native code address of the trampoline which unpacks
// an invocation and calls its closure.
func entryAddr() uintptr

// Call runs f on the stack region and returns when f returns.  Calls nest to
// any depth across distinct regions.  A panic in f is re-raised on the
// original stack.
//
// The region must be large enough for f's full call depth: the runtime can
// relocate an ordinary goroutine stack when it runs out, but it cannot
// relocate a caller-owned region, so running past the low end faults on the
// guard page.
func Call(f func(), r *Region) {
	inv := &invocation{region: r}
	inv.f = func() {
		defer func() {
			inv.panicked = recover()
		}()
		f()
		inv.done = true
	}

	lo := r.base()
	top := r.Top()
	entry := prim.Func(entryAddr())
	data := unsafe.Pointer(inv)

	liveMu.Lock()
	live[inv] = struct{}{}
	liveMu.Unlock()

	runtime.LockOSThread()

	prevLimit, hadLimit := setLimit(lo + limitCushion)

	// Between here and the restore below, only the switch itself may run:
	// any Go call would check the repointed bounds from the old stack.
	g := (*gstack)(getg())
	saved := *g
	guard := saved.stackguard0 - saved.lo
	if guard > 4096 {
		// stackguard0 doubles as the preemption flag and holds a
		// poison word right now.
		guard = stackGuardCushion
	}
	g.lo = lo
	g.hi = top
	g.stackguard0 = lo + guard

	prim.Switch(top, entry, data)

	*g = saved

	restoreLimit(prevLimit, hadLimit)

	runtime.UnlockOSThread()

	liveMu.Lock()
	delete(live, inv)
	liveMu.Unlock()

	if !inv.done {
		panic(inv.panicked)
	}
}
