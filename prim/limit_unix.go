// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux || darwin) && (386 || amd64)

package prim

// HaveStackLimit indicates that the thread control block reserves a
// segmented-stack limit slot on this target.
const HaveStackLimit = true

// StackLimit reads the calling thread's segmented-stack limit slot: the
// lowest address which growth-check logic treats as stack-exhausted.  The
// slot is distinct per thread, so concurrent callers never contend.
//
// The slot address is only backed by a real slot when the thread carries a C
// library control block.  In a process built without cgo the same address
// lands inside thread state owned by the Go runtime, so the accessors are
// meaningful on cgo-created threads only.
func StackLimit() uintptr

// SetStackLimit stores limit in the calling thread's segmented-stack limit
// slot.  See StackLimit for when the slot is real.
func SetStackLimit(limit uintptr)
