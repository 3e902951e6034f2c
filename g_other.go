// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64

package bigstack

import (
	"bytes"
	"runtime"
	"strconv"
)

// gID parses the goroutine id from a stack trace header.  Slow, but this
// code path only exists on targets without a switching backend, where the
// limit map stays empty anyway.
func gID() uintptr {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}

	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return uintptr(id)
}
