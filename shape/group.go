// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/cubemesh/math32"
)

// Validator is implemented by meshes whose parameters can be invalid.
type Validator interface {
	Validate() error
}

// Group is a group of shapes laid out back to back in one set of arrays.
// Its total vertex count is bounded by [MaxVertex].
// Pos is not applied to the member shapes, which carry their own.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Mesh
}

// NewGroup returns a new [Group] holding the given shapes.
func NewGroup(shapes ...Mesh) (*Group, error) {
	gp := &Group{}
	for _, sh := range shapes {
		if err := gp.Add(sh); err != nil {
			return nil, err
		}
	}
	return gp, nil
}

// NewCubeRow returns a group of count cubes of the given side length,
// lined up along the X axis with the given gap between them, and
// centered on the origin.
func NewCubeRow(count int, side, spacing float32) (*Group, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: cube count %d must be at least 1", ErrInvalidParameter, count)
	}
	if !math32.IsFinite(spacing) || spacing < 0 {
		return nil, fmt.Errorf("%w: cube spacing %g must be non-negative and finite", ErrInvalidParameter, spacing)
	}
	step := side + spacing
	var start float32
	if count > 1 {
		start = -step * float32(count-1) / 2
	}
	if !math32.IsFinite(step) || !math32.IsFinite(start) || !math32.IsFinite(math32.Abs(start)+side/2) {
		return nil, fmt.Errorf("%w: row of %d cubes of side %g with spacing %g is too large", ErrInvalidParameter, count, side, spacing)
	}
	gp := &Group{}
	for i := 0; i < count; i++ {
		cb, err := NewCube(side)
		if err != nil {
			return nil, err
		}
		cb.Pos = math32.Vec3(start+step*float32(i), 0, 0)
		if err := gp.Add(cb); err != nil {
			return nil, err
		}
	}
	return gp, nil
}

// Add appends the given shape, returning an error wrapping
// [ErrIndexOverflow] if the group would then need more than
// [MaxVertex] vertices.
func (gp *Group) Add(sh Mesh) error {
	nv, _, _ := gp.MeshSize()
	snv, _, _ := sh.MeshSize()
	if nv+snv > MaxVertex {
		return fmt.Errorf("%w: group of %d vertices cannot add a shape of %d vertices (max %d)", ErrIndexOverflow, nv, snv, MaxVertex)
	}
	gp.Shapes = append(gp.Shapes, sh)
	return nil
}

// Validate validates each shape in the group, along with its total size.
func (gp *Group) Validate() error {
	for i, sh := range gp.Shapes {
		vl, ok := sh.(Validator)
		if !ok {
			continue
		}
		if err := vl.Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	if nv, _, _ := gp.MeshSize(); nv > MaxVertex {
		return fmt.Errorf("%w: group of %d vertices (max %d)", ErrIndexOverflow, nv, MaxVertex)
	}
	return nil
}

// MeshSize returns number of vertex, index and line points in this shape element.
func (gp *Group) MeshSize() (numVertex, numIndex, numLine int) {
	for _, sh := range gp.Shapes {
		nv, ni, nl := sh.MeshSize()
		numVertex += nv
		numIndex += ni
		numLine += nl
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets
func (gp *Group) Set(vertex, normal, texcoord math32.ArrayF32, index, line math32.ArrayU8) {
	vo, io, lo := gp.Offsets()
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		sh.SetOffsets(vo, io, lo)
		sh.Set(vertex, normal, texcoord, index, line)
		gp.CBBox.ExpandByBox(sh.MeshBBox())
		nv, ni, nl := sh.MeshSize()
		vo += nv
		io += ni
		lo += nl
	}
}
