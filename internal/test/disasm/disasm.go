// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm prints native routine text for test diagnostics.
package disasm

import (
	"fmt"
	"io"

	"github.com/bnagy/gapstone"
)

// Fprint disassembles text located at addr, stopping after the first return
// instruction.
func Fprint(w io.Writer, text []byte, addr uintptr) (err error) {
	engine, err := gapstone.New(gapstone.CS_ARCH_X86, textMode)
	if err != nil {
		return
	}
	defer engine.Close()

	err = engine.SetOption(gapstone.CS_OPT_SYNTAX, gapstone.CS_OPT_SYNTAX_ATT)
	if err != nil {
		return
	}

	insns, err := engine.Disasm(text, uint64(addr), 0)
	if err != nil {
		return
	}

	for i := range insns {
		insn := insns[i]

		fmt.Fprintf(w, "%8x:\t%s\t%s\n", insn.Address, insn.Mnemonic, insn.OpStr)

		if insn.Mnemonic == "ret" || insn.Mnemonic == "retq" || insn.Mnemonic == "retl" {
			break
		}
	}

	return
}
