// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz
// +build gofuzz

package bigstack

// Fuzz nests stack switches to a data-driven depth with data-driven region
// sizes.
func Fuzz(data []byte) int {
	if len(data) == 0 || len(data) > 64 {
		return -1
	}

	var descend func(i int)
	descend = func(i int) {
		if i == len(data) {
			return
		}

		r, err := NewRegion(16*1024 + int(data[i])*512)
		if err != nil {
			panic(err)
		}
		defer r.Close()

		Call(func() {
			descend(i + 1)
		}, r)
	}

	descend(0)
	return 1
}
