// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigstack runs functions on dedicated stack regions, and grows the
// effective stack on demand at manually instrumented points.
//
// The raw control-transfer primitives live in the prim subpackage; this
// package supplies the policy they deliberately omit: region allocation and
// sizing, limit bookkeeping, and making ordinary Go functions callable on a
// foreign stack.
//
// MaybeGrow is the main entry point.  Annotate recursion-heavy code with it,
// stating how close to the limit the code may run and how much stack to
// allocate when it gets there:
//
//	bigstack.MaybeGrow(32*1024, 1024*1024, func() {
//		// at least 32K of stack available here
//	})
//
// When the remaining distance to the tracked limit is unknown (nothing has
// been switched yet and the OS doesn't advertise bounds), the function is
// invoked in place.
package bigstack
