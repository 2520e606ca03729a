// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/cubemesh/math32"
)

// Buffers holds the attribute streams and index buffers of a [Mesh],
// as handed to a rendering host. Vertex, Normal and TexCoord are
// index aligned: 3, 3 and 2 floats per vertex. Index holds triangles
// and Line holds segments, both into the same vertex pool.
//
// Buffers are not modified after [NewBuffers] returns.
type Buffers struct {
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
	Index    math32.ArrayU8
	Line     math32.ArrayU8

	// BBox is the bounding box of all vertices, computed from
	// the written vertex positions.
	BBox math32.Box3
}

// NewBuffers allocates exactly sized buffers for the given mesh and
// sets them from it, starting at offset 0. The mesh is validated first
// if it is a [Validator], and every index is checked against the size
// of the vertex pool.
func NewBuffers(ms Mesh) (*Buffers, error) {
	if vl, ok := ms.(Validator); ok {
		if err := vl.Validate(); err != nil {
			return nil, err
		}
	}
	nv, ni, nl := ms.MeshSize()
	if nv > MaxVertex {
		return nil, fmt.Errorf("%w: mesh has %d vertices (max %d)", ErrIndexOverflow, nv, MaxVertex)
	}
	bf := &Buffers{
		Vertex:   math32.NewArrayF32(nv*3, nv*3),
		Normal:   math32.NewArrayF32(nv*3, nv*3),
		TexCoord: math32.NewArrayF32(nv*2, nv*2),
		Index:    math32.NewArrayU8(ni, ni),
		Line:     math32.NewArrayU8(nl, nl),
	}
	ms.SetOffsets(0, 0, 0)
	ms.Set(bf.Vertex, bf.Normal, bf.TexCoord, bf.Index, bf.Line)
	bf.BBox = BBoxFromVertices(bf.Vertex, 0, nv)
	if err := checkIndexes("triangle", bf.Index, nv); err != nil {
		return nil, err
	}
	if err := checkIndexes("line", bf.Line, nv); err != nil {
		return nil, err
	}
	return bf, nil
}

func checkIndexes(kind string, idx math32.ArrayU8, numVertex int) error {
	for i, ix := range idx {
		if int(ix) >= numVertex {
			return fmt.Errorf("%w: %s index %d is %d, with %d vertices", ErrIndexRange, kind, i, ix, numVertex)
		}
	}
	return nil
}

// NumVertex returns the number of vertices in the pool.
func (bf *Buffers) NumVertex() int {
	return len(bf.Vertex) / 3
}

// Vertices returns the vertex positions.
func (bf *Buffers) Vertices() []math32.Vector3 {
	return vectors3(bf.Vertex)
}

// Normals returns the vertex normals.
func (bf *Buffers) Normals() []math32.Vector3 {
	return vectors3(bf.Normal)
}

// UVs returns the vertex texture coordinates.
func (bf *Buffers) UVs() []math32.Vector2 {
	n := len(bf.TexCoord) / 2
	uvs := make([]math32.Vector2, n)
	for i := range uvs {
		uvs[i] = bf.TexCoord.GetVector2(i * 2)
	}
	return uvs
}

// Triangles returns the solid index buffer grouped into triangles.
func (bf *Buffers) Triangles() [][3]uint8 {
	tris := make([][3]uint8, len(bf.Index)/3)
	for i := range tris {
		copy(tris[i][:], bf.Index[i*3:])
	}
	return tris
}

// Segments returns the line index buffer grouped into segments.
func (bf *Buffers) Segments() [][2]uint8 {
	segs := make([][2]uint8, len(bf.Line)/2)
	for i := range segs {
		copy(segs[i][:], bf.Line[i*2:])
	}
	return segs
}

// Index32 returns the triangle indexes widened to 32 bits,
// for hosts that do not accept 8-bit index buffers.
func (bf *Buffers) Index32() math32.ArrayU32 {
	return bf.Index.ToU32()
}

// Line32 returns the line indexes widened to 32 bits.
func (bf *Buffers) Line32() math32.ArrayU32 {
	return bf.Line.ToU32()
}

func vectors3(a math32.ArrayF32) []math32.Vector3 {
	vs := make([]math32.Vector3, len(a)/3)
	for i := range vs {
		vs[i] = a.GetVector3(i * 3)
	}
	return vs
}
