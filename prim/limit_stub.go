// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !((linux || darwin) && (386 || amd64))

package prim

// HaveStackLimit indicates that the thread control block reserves a
// segmented-stack limit slot on this target.  Where absent, StackLimit
// reports zero and SetStackLimit has no effect: stack-bounds decisions must
// come from elsewhere (see TIB).
const HaveStackLimit = false

func StackLimit() uintptr { return 0 }

func SetStackLimit(limit uintptr) {}
