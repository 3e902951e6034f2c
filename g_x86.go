// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64

package bigstack

// gID is the current goroutine's identity for limit bookkeeping.  The g
// pointer is free to obtain and unique for the goroutine's lifetime.
func gID() uintptr {
	return uintptr(getg())
}
