// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prim provides raw stack control-transfer primitives: querying the
// stack pointer, forcing an opaque call boundary, running a native routine on
// a caller-supplied stack region, and accessing the per-thread stack
// bookkeeping slots which some OS/architecture combinations reserve.
//
// Nothing here allocates, blocks or fails.  Correctness of every operation is
// a caller precondition; a violated precondition corrupts memory or crashes
// instead of reporting an error.  This layer sits below any error-reporting
// abstraction, and it never second-guesses its inputs.
package prim

// Func is the native code address of a routine which takes one pointer-sized
// argument and returns a pointer-sized result using the platform's standard
// calling convention.
type Func uintptr
