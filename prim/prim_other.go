// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64

package prim

import (
	"unsafe"
)

// Supported indicates that this target has a stack switching backend.
const Supported = false

func StackPointer() uintptr { return 0 }

//go:noinline
func Barrier() {}

func Switch(top uintptr, entry Func, data unsafe.Pointer) uintptr {
	panic("prim: stack switching is not supported on this architecture")
}

func SwitchAddr() uintptr { return 0 }
