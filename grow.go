// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigstack

import (
	"sync"

	"gate.computer/bigstack/prim"
)

// Red zone kept between the tracked limit and the guard page, so that code
// which runs all the way down to the limit still has room for the frames it
// promised not to exceed.
const limitCushion = 32 * 1024

var (
	limitMu sync.Mutex
	limits  = make(map[uintptr]uintptr) // keyed by goroutine identity
)

func setLimit(limit uintptr) (prev uintptr, had bool) {
	id := gID()

	limitMu.Lock()
	defer limitMu.Unlock()

	prev, had = limits[id]
	limits[id] = limit
	return
}

func restoreLimit(prev uintptr, had bool) {
	id := gID()

	limitMu.Lock()
	defer limitMu.Unlock()

	if had {
		limits[id] = prev
	} else {
		delete(limits, id)
	}
}

func currentLimit() (limit uintptr, ok bool) {
	id := gID()

	limitMu.Lock()
	limit, ok = limits[id]
	limitMu.Unlock()

	if !ok {
		if limit = osStackLimit(); limit != 0 {
			ok = true
		}
	}
	return
}

// RemainingStack returns the distance from the current stack pointer down to
// the tracked limit.  ok is false when no limit is known, in which case
// MaybeGrow runs its function in place.
func RemainingStack() (n uintptr, ok bool) {
	limit, ok := currentLimit()
	if !ok {
		return
	}

	sp := prim.StackPointer()
	if sp <= limit {
		return 0, true
	}
	return sp - limit, true
}

// MaybeGrow calls f, on the current stack if at least redZone bytes remain
// below the current position, and otherwise on a freshly allocated region of
// stackSize bytes which is released after f returns.  A non-nil error means
// the region could not be allocated and f was not called.
//
// On targets without a stack switching backend, and whenever the remaining
// stack is unknown, f is called in place.
func MaybeGrow(redZone, stackSize uintptr, f func()) error {
	if !prim.Supported {
		f()
		return nil
	}

	if n, ok := RemainingStack(); ok && n < redZone {
		return grow(stackSize, f)
	}

	f()
	return nil
}

// Keep the slow path out of annotated call sites.
//
//go:noinline
func grow(stackSize uintptr, f func()) error {
	r, err := NewRegion(int(stackSize))
	if err != nil {
		return err
	}
	defer r.Close()

	Call(f, r)
	return nil
}
