// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64

package prim

import (
	"unsafe"
)

// Supported indicates that this target has a stack switching backend.
const Supported = true

// StackPointer returns the value of the stack pointer register.  It reflects
// the current call depth modulo this call's own frame; callers must not
// expect byte-exact agreement with the value at an arbitrary earlier point in
// the same function.
func StackPointer() uintptr

// Barrier is an opaque call with no machine-level effect.  Being an external
// assembly routine, it cannot be inlined or proven side-effect free, so the
// compiler cannot reorder or elide stack-sensitive code placed around a call
// site.
func Barrier()

// Switch makes the stack region topped by top the active stack, calls entry
// with data as its only argument, restores the caller's stack and frame
// pointers exactly, and returns entry's result unchanged.
//
// top must be aligned per the platform calling convention (16 bytes), and the
// region below it must accommodate entry's full call depth.  Neither is
// checked.  Calls nest to arbitrary depth across disjoint regions, including
// back into the thread's native stack.  If entry never returns, neither does
// Switch.
//
//go:noescape
func Switch(top uintptr, entry Func, data unsafe.Pointer) uintptr

// SwitchAddr returns the address of the Switch routine's first instruction.
// It is meant for diagnostic disassembly.
func SwitchAddr() uintptr
