// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds indexed meshes as flat attribute and index
// buffers, ready to be uploaded by a rendering host.
//
// The central mesh is the flat-shaded [Cube]: 8 corners duplicated
// three times, one copy per face family, so that every face can carry
// its own normal and texture coordinates while still sharing a single
// 24 vertex pool. The pool is addressed by 8-bit indexes, for both the
// solid triangles and the wireframe lines.
package shape

import (
	"errors"

	"cogentcore.org/cubemesh/math32"
)

// MaxVertex is the number of vertices addressable by 8-bit indexes.
const MaxVertex = 256

var (
	// ErrInvalidParameter is returned for geometric parameters that
	// cannot produce a mesh, such as a non-positive side length.
	ErrInvalidParameter = errors.New("shape: invalid parameter")

	// ErrIndexOverflow is returned when a mesh would need more vertices
	// than 8-bit indexes can address.
	ErrIndexOverflow = errors.New("shape: index overflow")

	// ErrIndexRange is returned when an index buffer refers past the
	// end of its vertex pool.
	ErrIndexRange = errors.New("shape: index out of range")
)

// Mesh is an interface for all shape-constructing elements.
// All Meshes must know in advance the number of vertex, index and line
// points they require, and the Set method writes the mesh data to arrays
// of appropriate size.
type Mesh interface {
	// MeshSize returns the number of vertex points, triangle index points,
	// and line index points in this shape element.
	MeshSize() (numVertex, numIndex, numLine int)

	// Set sets points in given allocated arrays: 3 floats per vertex
	// and normal, 2 floats per texture coordinate, one uint8 per index.
	Set(vertex, normal, texcoord math32.ArrayF32, index, line math32.ArrayU8)

	// Offsets returns starting offset for vertices, indexes and lines
	// in the full shape array, in terms of points, not floats.
	Offsets() (vtxOffset, idxOffset, lineOffset int)

	// SetOffsets sets starting offsets for vertices, indexes and lines
	// in the full shape array, in terms of points, not floats.
	SetOffsets(vtxOffset, idxOffset, lineOffset int)

	// MeshBBox returns the bounding box for the shape, typically
	// centered around 0. This is only valid after Set has been called.
	MeshBBox() math32.Box3
}

// ShapeBase is the base shape element.
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// triangle index offset, in points
	IndexOffset int

	// line index offset, in points
	LineOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns starting offset for vertices, indexes and lines
// in the full shape array, in terms of points, not floats.
func (sb *ShapeBase) Offsets() (vtxOffset, idxOffset, lineOffset int) {
	return sb.VertexOffset, sb.IndexOffset, sb.LineOffset
}

// SetOffsets sets starting offsets for vertices, indexes and lines
// in the full shape array.
func (sb *ShapeBase) SetOffsets(vtxOffset, idxOffset, lineOffset int) {
	sb.VertexOffset, sb.IndexOffset, sb.LineOffset = vtxOffset, idxOffset, lineOffset
}

// MeshBBox returns the bounding box for the shape, typically centered around 0.
// This is only valid after Set has been called.
func (sb *ShapeBase) MeshBBox() math32.Box3 {
	return sb.CBBox
}

// BBoxFromVertices returns the bounding box updated from the range of vertex points.
func BBoxFromVertices(vertex math32.ArrayF32, vtxOffset int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOffset * 3
	for vi := 0; vi < numVertex; vi++ {
		bb.ExpandByPoint(vertex.GetVector3(vidx + vi*3))
	}
	return bb
}
