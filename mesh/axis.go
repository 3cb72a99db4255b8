// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh describes the uniform Cartesian sub-block that the core
// pipeline operates on: its shape, ghost width, cell spacing and boundary
// flags. It does not perform domain decomposition or halo filling itself
// (those are external collaborators, see package collab) — it only
// describes the local geometry those collaborators act on.
package mesh

import "github.com/cpmech/gosl/chk"

// Axis identifies a sweep direction. Representing it as a small enum
// (rather than rotating array values) lets every directionally-aware
// routine permute component indices through a compile-time table instead
// of copying and re-ordering slices.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "?"
}

// permute[axis] gives, for velocity/B-field component index 0,1,2 in
// "always-normal-is-x" solver-local order, the actual (vx,vy,vz) index to
// read. permute[axis][0] is always the component normal to the interface.
var permute = [3][3]int{
	{0, 1, 2}, // X: normal=vx, tangentials=vy,vz
	{1, 0, 2}, // Y: normal=vy, tangentials=vx,vz
	{2, 1, 0}, // Z: normal=vz, tangentials=vy,vx
}

// ToNormal permutes a (vx,vy,vz)-ordered triple into (normal,tang1,tang2)
// order for the given sweep axis.
func ToNormal(axis Axis, vx, vy, vz float64) (n, t1, t2 float64) {
	v := [3]float64{vx, vy, vz}
	p := permute[axis]
	return v[p[0]], v[p[1]], v[p[2]]
}

// FromNormal is the inverse of ToNormal: given (normal,tang1,tang2) in
// solver-local order, returns (vx,vy,vz).
func FromNormal(axis Axis, n, t1, t2 float64) (vx, vy, vz float64) {
	p := permute[axis]
	var v [3]float64
	v[p[0]], v[p[1]], v[p[2]] = n, t1, t2
	return v[0], v[1], v[2]
}

// BoundaryKind enumerates the fill policy for one of the six sub-block
// faces (§4.8).
type BoundaryKind int

const (
	Periodic BoundaryKind = iota
	Reflective
	Outflow
	Custom
)

// Block describes the local geometry of one sub-block: Nx x Ny x Nz
// interior cells surrounded by Ghost cells on every side, with physical
// spacing Dx, Dy, Dz and one BoundaryKind per face (-x,+x,-y,+y,-z,+z).
type Block struct {
	Nx, Ny, Nz int
	Ghost      int
	Dx, Dy, Dz float64
	Boundary   [6]BoundaryKind
}

// NewBlock validates and returns a Block descriptor.
func NewBlock(nx, ny, nz, ghost int, dx, dy, dz float64) *Block {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		chk.Panic("mesh: block dimensions must be positive (nx=%d ny=%d nz=%d)", nx, ny, nz)
	}
	if ghost < 1 {
		chk.Panic("mesh: ghost width must be >= 1, got %d", ghost)
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		chk.Panic("mesh: cell spacing must be positive (dx=%v dy=%v dz=%v)", dx, dy, dz)
	}
	return &Block{Nx: nx, Ny: ny, Nz: nz, Ghost: ghost, Dx: dx, Dy: dy, Dz: dz}
}

// Spacing returns the cell width along the given axis.
func (b *Block) Spacing(axis Axis) float64 {
	switch axis {
	case X:
		return b.Dx
	case Y:
		return b.Dy
	case Z:
		return b.Dz
	}
	chk.Panic("mesh: invalid axis %v", axis)
	return 0
}

// Extent returns the interior cell count along the given axis.
func (b *Block) Extent(axis Axis) int {
	switch axis {
	case X:
		return b.Nx
	case Y:
		return b.Ny
	case Z:
		return b.Nz
	}
	chk.Panic("mesh: invalid axis %v", axis)
	return 0
}

// CheckGhostWidth validates that the ghost width suffices for the given
// reconstruction stencil half-width (PPM needs >=2, PLM needs >=1, §4.8).
func (b *Block) CheckGhostWidth(stencilHalfWidth int) {
	if b.Ghost < stencilHalfWidth {
		chk.Panic("mesh: ghost width %d is insufficient for stencil half-width %d", b.Ghost, stencilHalfWidth)
	}
}
