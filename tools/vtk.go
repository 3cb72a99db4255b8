// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/hannahjleary/cholla/mesh"
	"github.com/hannahjleary/cholla/state"
)

// WriteVTK dumps grid's interior cells to a legacy VTK STRUCTURED_POINTS
// file that ParaView/VisIt can read directly, one scalar field per
// conserved/derived quantity (density, velocity components, pressure,
// total energy, and, with MHD, magnetic field components). It plays
// GenVtu.go's role — bin per-cell values by key, then write one SCALARS
// block per key under a single POINT_DATA section, one point per interior
// cell — but for a uniform Cartesian block instead of an unstructured
// node/element mesh, so there is no integration-point extrapolation step.
func WriteVTK(path string, grid *mesh.Grid, ph *state.Physics) error {
	nx := grid.Block.Extent(mesh.X)
	ny := grid.Block.Extent(mesh.Y)
	nz := grid.Block.Extent(mesh.Z)
	loX, _ := grid.InteriorRange(mesh.X)
	loY, _ := grid.InteriorRange(mesh.Y)
	loZ, _ := grid.InteriorRange(mesh.Z)

	var buf bytes.Buffer
	io.Ff(&buf, "# vtk DataFile Version 3.0\n")
	io.Ff(&buf, "cholla grid snapshot\n")
	io.Ff(&buf, "ASCII\n")
	io.Ff(&buf, "DATASET STRUCTURED_POINTS\n")
	io.Ff(&buf, "DIMENSIONS %d %d %d\n", nx, ny, nz)
	io.Ff(&buf, "ORIGIN 0 0 0\n")
	io.Ff(&buf, "SPACING %g %g %g\n", grid.Block.Dx, grid.Block.Dy, grid.Block.Dz)
	io.Ff(&buf, "POINT_DATA %d\n", nx*ny*nz)

	fields := []struct {
		name string
		fn   func(state.Conserved, state.Primitive) float64
	}{
		{"density", func(c state.Conserved, w state.Primitive) float64 { return w.Rho }},
		{"velocity_x", func(c state.Conserved, w state.Primitive) float64 { return w.VelX }},
		{"velocity_y", func(c state.Conserved, w state.Primitive) float64 { return w.VelY }},
		{"velocity_z", func(c state.Conserved, w state.Primitive) float64 { return w.VelZ }},
		{"pressure", func(c state.Conserved, w state.Primitive) float64 { return w.Press }},
		{"energy", func(c state.Conserved, w state.Primitive) float64 { return c.Energy }},
	}
	if ph.MHD {
		fields = append(fields,
			struct {
				name string
				fn   func(state.Conserved, state.Primitive) float64
			}{"Bx", func(c state.Conserved, w state.Primitive) float64 { return w.Bx }},
			struct {
				name string
				fn   func(state.Conserved, state.Primitive) float64
			}{"By", func(c state.Conserved, w state.Primitive) float64 { return w.By }},
			struct {
				name string
				fn   func(state.Conserved, state.Primitive) float64
			}{"Bz", func(c state.Conserved, w state.Primitive) float64 { return w.Bz }},
		)
	}

	for _, field := range fields {
		io.Ff(&buf, "SCALARS %s double 1\n", field.name)
		io.Ff(&buf, "LOOKUP_TABLE default\n")
		for k := 0; k < nz; k++ {
			for j := 0; j < ny; j++ {
				for i := 0; i < nx; i++ {
					c := *grid.At(loX+i, loY+j, loZ+k)
					w := state.ToPrimitive(c, ph)
					io.Ff(&buf, "%g\n", field.fn(c, w))
				}
			}
		}
	}

	return io.WriteFile(path, &buf)
}
