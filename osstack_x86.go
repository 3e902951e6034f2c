// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64

package bigstack

// osStackLimit falls back on the low bound the runtime records for the
// current goroutine's stack.  The bound moves when the runtime relocates the
// stack, so it is read fresh on every query and never cached in the map.
func osStackLimit() uintptr {
	return (*gstack)(getg()).lo
}
