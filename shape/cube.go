// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/cubemesh/math32"
)

const (
	// CubeNumCorners is the number of distinct cube corners.
	CubeNumCorners = 8

	// CubeNumVertex is the size of the cube vertex pool:
	// each corner repeated once per face family.
	CubeNumVertex = CubeNumCorners * 3

	// CubeNumTriangles is the number of solid triangles, two per face.
	CubeNumTriangles = 12

	// CubeNumSolid is the number of solid triangle indexes.
	CubeNumSolid = CubeNumTriangles * 3

	// CubeNumSegments is the number of wireframe segments:
	// the 12 cube edges plus 6 face diagonals.
	CubeNumSegments = 18

	// CubeNumLine is the number of line indexes.
	CubeNumLine = CubeNumSegments * 2
)

// cubeCorners are the 8 corners of a unit-half-size cube.
// The vertex pool repeats them, in this order, three times.
var cubeCorners = [CubeNumCorners]math32.Vector3{
	{-1, -1, 1},
	{1, -1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{-1, 1, 1},
	{1, 1, 1},
	{-1, 1, -1},
	{1, 1, -1},
}

var cubeNormals = [CubeNumVertex]math32.Vector3{
	// bottom and top
	{0, -1, 0},
	{0, -1, 0},
	{0, -1, 0},
	{0, -1, 0},

	{0, 1, 0},
	{0, 1, 0},
	{0, 1, 0},
	{0, 1, 0},

	// front and back
	{0, 0, 1},
	{0, 0, 1},
	{0, 0, -1},
	{0, 0, -1},

	{0, 0, 1},
	{0, 0, 1},
	{0, 0, -1},
	{0, 0, -1},

	// left and right
	{-1, 0, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{1, 0, 0},

	{-1, 0, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{1, 0, 0},
}

var cubeUVs = [CubeNumVertex]math32.Vector2{
	{0, 0}, // bottom
	{1, 0}, // bottom
	{0, 1}, // bottom
	{1, 1}, // bottom

	{0, 1}, // top
	{1, 1}, // top
	{0, 0}, // top
	{1, 0}, // top

	{0, 1}, // front
	{1, 1}, // front
	{1, 1}, // back
	{0, 1}, // back

	{0, 0}, // front
	{1, 0}, // front
	{1, 0}, // back
	{0, 0}, // back

	{1, 1}, // left
	{0, 1}, // right
	{0, 1}, // left
	{1, 1}, // right

	{1, 0}, // left
	{0, 0}, // right
	{0, 0}, // left
	{1, 0}, // right
}

// cubeSolid lists the triangles counter-clockwise seen from outside,
// in [Face] order. The comments give the corner triangle and the
// family offset added to reach the right duplicate.
var cubeSolid = [CubeNumSolid]uint8{
	// bottom
	0, 2, 1,
	1, 2, 3,
	// back
	10, 14, 11, // 2, 6, 3 + 8
	11, 14, 15, // 3, 6, 7 + 8
	// left
	16, 20, 18, // 0, 4, 2 + 16
	18, 20, 22, // 2, 4, 6 + 16
	// right
	17, 19, 21, // 1, 3, 5 + 16
	19, 23, 21, // 3, 7, 5 + 16
	// front
	8, 9, 12, // 0, 1, 4 + 8
	9, 13, 12, // 1, 5, 4 + 8
	// top
	4, 5, 6,
	5, 7, 6,
}

var cubeLine = [CubeNumLine]uint8{
	// bottom
	0, 1,
	0, 2,
	1, 3,
	2, 3,
	// top
	4, 5,
	4, 6,
	5, 7,
	6, 7,
	// sides
	0, 4,
	1, 5,
	2, 6,
	3, 7,
	// diagonals
	0, 5,
	1, 7,
	2, 4,
	3, 6,
	1, 2,
	4, 7,
}

// CubeVertices returns the cube vertex pool for a cube of the given
// side length centered at the origin: the 8 corners, each coordinate
// ±side/2, repeated three times. A side length that is not a positive
// finite number is rejected with [ErrInvalidParameter].
func CubeVertices(side float32) ([CubeNumVertex]math32.Vector3, error) {
	var vtx [CubeNumVertex]math32.Vector3
	if err := checkSide(side); err != nil {
		return vtx, err
	}
	setCubeVertices(vtx[:], side/2, math32.Vector3{})
	return vtx, nil
}

// CubeNormals returns the unit normals aligned to [CubeVertices].
func CubeNormals() [CubeNumVertex]math32.Vector3 {
	return cubeNormals
}

// CubeUVs returns the texture coordinates aligned to [CubeVertices],
// mapping each face onto the full unit square.
func CubeUVs() [CubeNumVertex]math32.Vector2 {
	return cubeUVs
}

// CubeSolidIndices returns the 12 solid triangles of the cube.
func CubeSolidIndices() [CubeNumSolid]uint8 {
	return cubeSolid
}

// CubeLineIndices returns the 18 wireframe segments of the cube:
// the 12 edges followed by 6 face diagonals.
func CubeLineIndices() [CubeNumLine]uint8 {
	return cubeLine
}

func checkSide(side float32) error {
	if !math32.IsFinite(side) || side <= 0 {
		return fmt.Errorf("%w: cube side length %g must be positive and finite", ErrInvalidParameter, side)
	}
	return nil
}

func setCubeVertices(vtx []math32.Vector3, half float32, pos math32.Vector3) {
	for i := range vtx {
		vtx[i] = cubeCorners[i%CubeNumCorners].MulScalar(half).Add(pos)
	}
}

// Cube is a flat-shaded cube mesh with a texture covering each face,
// and an 18 segment wireframe over it.
type Cube struct {
	ShapeBase

	// Side is the length of each side.
	Side float32
}

// NewCube returns a new [Cube] with the given side length,
// or an error wrapping [ErrInvalidParameter].
func NewCube(side float32) (*Cube, error) {
	cb := &Cube{Side: side}
	if err := cb.Validate(); err != nil {
		return nil, err
	}
	return cb, nil
}

// Validate returns an error if the side length is not a positive finite
// number, or if any corner of the positioned cube is not finite.
func (cb *Cube) Validate() error {
	if err := checkSide(cb.Side); err != nil {
		return err
	}
	ext := cb.Pos.Abs().Add(math32.Vector3Scalar(cb.Side / 2))
	if !ext.IsFinite() {
		return fmt.Errorf("%w: cube of side %g at %v extends past float32 range", ErrInvalidParameter, cb.Side, cb.Pos)
	}
	return nil
}

// MeshSize returns the number of vertex, index and line points.
func (cb *Cube) MeshSize() (numVertex, numIndex, numLine int) {
	return CubeNumVertex, CubeNumSolid, CubeNumLine
}

// Set sets points in given allocated arrays.
// Indexes are offset by the vertex offset, which must leave them
// addressable by 8-bit indexes; see [Group.Add].
func (cb *Cube) Set(vertex, normal, texcoord math32.ArrayF32, index, line math32.ArrayU8) {
	var vtx [CubeNumVertex]math32.Vector3
	hs := cb.Side / 2
	setCubeVertices(vtx[:], hs, cb.Pos)

	vo := cb.VertexOffset
	for i := range vtx {
		vertex.SetVector3((vo+i)*3, vtx[i])
		normal.SetVector3((vo+i)*3, cubeNormals[i])
		texcoord.SetVector2((vo+i)*2, cubeUVs[i])
	}
	base := uint8(vo)
	for i, ix := range cubeSolid {
		index[cb.IndexOffset+i] = base + ix
	}
	for i, ix := range cubeLine {
		line[cb.LineOffset+i] = base + ix
	}

	half := math32.Vector3Scalar(hs)
	cb.CBBox = math32.B3(half.Negate(), half).Translate(cb.Pos)
}
