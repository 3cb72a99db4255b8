// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/hannahjleary/cholla/state"

// BrioWuGamma is the adiabatic index of the standard Brio & Wu (1988)
// MHD shock-tube problem.
const BrioWuGamma = 2.0

// BrioWuLeft and BrioWuRight are the problem's initial states (normal
// field Bx is continuous across the tube and shared by both sides, so
// it's carried on each state for convenience rather than factored out).
// There is no closed-form solution analogous to Sod's — the standard
// check is qualitative (a compound wave structure: fast rarefaction,
// slow compound wave, contact, slow shock, fast rarefaction) together
// with non-negativity, which tests/ exercises against these states.
var (
	BrioWuLeft  = state.Primitive{Rho: 1.0, Press: 1.0, Bx: 0.75, By: 1.0}
	BrioWuRight = state.Primitive{Rho: 0.128, Press: 0.1, Bx: 0.75, By: -1.0}
)
