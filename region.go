// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigstack

import (
	"os"
	"unsafe"

	"golang.org/x/xerrors"
)

// Region is a contiguous memory block usable as a call stack.  The page below
// the usable range is protected, so running off the low end faults instead of
// corrupting adjacent memory.
//
// A region must not be entered by two threads concurrently; during a switch
// it belongs exclusively to the calling thread.
type Region struct {
	mem   []byte
	guard int
}

// NewRegion allocates stack memory of at least the given size (rounded up to
// page granularity), plus a guard page below it.
func NewRegion(size int) (*Region, error) {
	page := os.Getpagesize()
	size = (size + page - 1) &^ (page - 1)

	mem, err := osAlloc(size + page)
	if err != nil {
		return nil, xerrors.Errorf("bigstack: stack region allocation: %w", err)
	}

	if err := osProtectGuard(mem[:page]); err != nil {
		osFree(mem)
		return nil, xerrors.Errorf("bigstack: stack region guard page: %w", err)
	}

	return &Region{
		mem:   mem,
		guard: page,
	}, nil
}

// Size is the usable byte count, excluding the guard page.
func (r *Region) Size() int {
	return len(r.mem) - r.guard
}

// Top returns the initial stack pointer value: the high end of the region,
// aligned down to a 16-byte boundary.
func (r *Region) Top() uintptr {
	return (uintptr(unsafe.Pointer(&r.mem[0])) + uintptr(len(r.mem))) &^ 15
}

// base is the lowest usable address, just above the guard page.
func (r *Region) base() uintptr {
	return uintptr(unsafe.Pointer(&r.mem[r.guard]))
}

// Close releases the memory.  The region must not be in use.  Closing twice
// is a no-op.
func (r *Region) Close() (err error) {
	if r.mem != nil {
		err = osFree(r.mem)
		r.mem = nil
	}
	return
}
