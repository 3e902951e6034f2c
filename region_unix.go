// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package bigstack

import (
	"golang.org/x/sys/unix"
)

func osAlloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

func osProtectGuard(page []byte) error {
	return unix.Mprotect(page, unix.PROT_NONE)
}

func osFree(mem []byte) error {
	return unix.Munmap(mem)
}
