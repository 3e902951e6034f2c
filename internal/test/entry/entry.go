// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64

// Package entry provides native-convention test routines which can be handed
// to prim.Switch without involving the Go runtime.
package entry

// Const42 returns the address of a routine which ignores its argument and
// returns 42.
func Const42() uintptr

// AddOne returns the address of a routine which returns its argument plus
// one.
func AddOne() uintptr
