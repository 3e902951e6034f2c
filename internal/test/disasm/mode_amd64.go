// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"github.com/bnagy/gapstone"
)

const textMode = gapstone.CS_MODE_64
