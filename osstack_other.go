// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64

package bigstack

// osStackLimit reports no limit.  Without a switching backend MaybeGrow runs
// everything in place, so the limit map stays empty here.
func osStackLimit() uintptr {
	return 0
}
