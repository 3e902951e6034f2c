// Copyright (c) 2020 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program deepsum computes a sum with one stack frame per term, switching to
// fresh stack regions as the recursion approaches the tracked limit.
package main

import (
	"flag"
	"fmt"
	"log"

	"gate.computer/bigstack"
)

var (
	terms      = flag.Int("n", 1000000, "number of terms (one stack frame each)")
	redZone    = flag.Int("redzone", 32*1024, "remaining-stack threshold in bytes")
	regionSize = flag.Int("stack", 1024*1024, "stack region size in bytes")
	verbose    = flag.Bool("v", false, "log stack growth")
)

func main() {
	flag.Parse()

	r, err := bigstack.NewRegion(*regionSize)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	var total int

	bigstack.Call(func() {
		total = sum(*terms)
	}, r)

	fmt.Println(total)
}

func sum(n int) (total int) {
	if n == 0 {
		return 0
	}

	if *verbose {
		if remaining, ok := bigstack.RemainingStack(); ok && remaining < uintptr(*redZone) {
			log.Printf("growing stack with %d bytes remaining at term %d", remaining, n)
		}
	}

	err := bigstack.MaybeGrow(uintptr(*redZone), uintptr(*regionSize), func() {
		total = sum(n-1) + 1
	})
	if err != nil {
		log.Fatal(err)
	}
	return
}
