// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reconstruct

import (
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// PCM is the first-order piecewise-constant scheme: the interface state
// equals the adjacent cell's state directly, §4.2. It is also every
// other scheme's fallback when a face would otherwise fail positivity.
type PCM struct{}

// Reconstruct implements Reconstructor.
func (o *PCM) Reconstruct(cells []state.Primitive, axis mesh.Axis, ph *state.Physics) (wl, wr []state.Primitive) {
	n := len(cells)
	if n < 2 {
		return nil, nil
	}
	wl = make([]state.Primitive, n-1)
	wr = make([]state.Primitive, n-1)
	for i := 0; i < n-1; i++ {
		wl[i] = cells[i]
		wr[i] = cells[i+1]
	}
	return
}
