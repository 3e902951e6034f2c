// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64

package bigstack

func Call(f func(), r *Region) {
	panic("bigstack: stack switching is not supported on this architecture")
}
