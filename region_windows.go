// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigstack

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osAlloc(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func osProtectGuard(page []byte) error {
	var old uint32
	return windows.VirtualProtect(uintptr(unsafe.Pointer(&page[0])), uintptr(len(page)), windows.PAGE_NOACCESS, &old)
}

func osFree(mem []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(&mem[0])), 0, windows.MEM_RELEASE)
}
