// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements end-to-end checks of the full hydro/MHD
// pipeline (§8): each test builds a grid with a tools scenario,
// advances it through integrator, and checks the result against
// either a closed-form reference (package ana) or a qualitative
// invariant (positivity, error shrinking under grid refinement).
package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

// Verbose turns on the chatty output gosl's chk/io package-level
// assertions print on failure; call it at the top of a test while
// debugging.
func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}
