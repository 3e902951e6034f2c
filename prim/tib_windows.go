// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows && (386 || amd64)

package prim

// TIB returns the address of the calling thread's information block, from
// which real stack bounds can be derived.  The value is stable for the
// thread's lifetime; the block's contents are the OS's business and must be
// treated as opaque here.
func TIB() uintptr
