// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cubemesh/math32"
)

func TestCubeVertices(t *testing.T) {
	for _, side := range []float32{0.001, 1, 2.5, 15, 1000} {
		vtx, err := CubeVertices(side)
		require.NoError(t, err)
		assert.Len(t, vtx, 24)
		for i := 0; i < 8; i++ {
			assert.Equal(t, vtx[i], vtx[i+8], "vertex %d", i)
			assert.Equal(t, vtx[i], vtx[i+16], "vertex %d", i)
		}
		for i, v := range vtx {
			a := v.Abs()
			assert.Equal(t, math32.Vector3Scalar(side/2), a, "side %g vertex %d", side, i)
		}
	}
}

func TestCubeVerticesSide15(t *testing.T) {
	vtx, err := CubeVertices(15)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(-7.5, -7.5, 7.5), vtx[0])
	assert.Equal(t, math32.Vec3(-7.5, 7.5, 7.5), vtx[4])
	assert.Equal(t, vtx[0], vtx[8])
	assert.Equal(t, vtx[0], vtx[16])
	assert.Equal(t, math32.Vec3(7.5, 7.5, -7.5), vtx[23])
}

func TestCubeVerticesInvalid(t *testing.T) {
	nan := math32.Infinity - math32.Infinity
	for _, side := range []float32{0, -1, -math32.Infinity, math32.Infinity, nan} {
		_, err := CubeVertices(side)
		assert.ErrorIs(t, err, ErrInvalidParameter, "side %g", side)

		_, err = NewCube(side)
		assert.ErrorIs(t, err, ErrInvalidParameter, "side %g", side)
	}
}

func TestCubeNormals(t *testing.T) {
	nrm := CubeNormals()
	assert.Len(t, nrm, 24)
	for i, n := range nrm {
		assert.True(t, n.IsUnit(), "normal %d: %v", i, n)
		fam, ok := FamilyOf(i)
		require.True(t, ok)
		switch fam {
		case FamilyY:
			assert.Equal(t, float32(1), math32.Abs(n.Y), "normal %d", i)
		case FamilyZ:
			assert.Equal(t, float32(1), math32.Abs(n.Z), "normal %d", i)
		case FamilyX:
			assert.Equal(t, float32(1), math32.Abs(n.X), "normal %d", i)
		}
	}
}

// Each family's normal must point away from the center on its
// corner, since every family copy is drawn on the faces it touches.
func TestCubeNormalsOutward(t *testing.T) {
	vtx, err := CubeVertices(2)
	require.NoError(t, err)
	nrm := CubeNormals()
	for i := range vtx {
		assert.Equal(t, float32(1), vtx[i].Dot(nrm[i]), "vertex %d", i)
	}
}

func TestCubeUVs(t *testing.T) {
	uvs := CubeUVs()
	assert.Len(t, uvs, 24)
	for i, uv := range uvs {
		assert.True(t, uv.InUnitSquare(), "uv %d: %v", i, uv)
		assert.True(t, uv.X == 0 || uv.X == 1, "uv %d: %v", i, uv)
		assert.True(t, uv.Y == 0 || uv.Y == 1, "uv %d: %v", i, uv)
	}
}

// Each face maps its four distinct corners onto the four distinct
// corners of the unit square.
func TestCubeUVsPerFace(t *testing.T) {
	uvs := CubeUVs()
	for f := Bottom; f < FacesN; f++ {
		seen := map[math32.Vector2]bool{}
		for _, ix := range uniqueIndexes(CubeFaceIndices(f)) {
			seen[uvs[ix]] = true
		}
		assert.Len(t, seen, 4, "face %v", f)
	}
}

func TestCubeSolidIndices(t *testing.T) {
	idx := CubeSolidIndices()
	assert.Len(t, idx, 36)
	for i, ix := range idx {
		assert.Less(t, ix, uint8(24), "index %d", i)
	}
	assert.Equal(t, []uint8{0, 2, 1}, idx[0:3])
	for _, ix := range idx[0:3] {
		fam, _ := FamilyOf(int(ix))
		assert.Equal(t, FamilyY, fam)
	}
}

// Each triangle has one normal across its vertices, and that normal is
// the counter-clockwise geometric normal of the triangle.
func TestCubeSolidWinding(t *testing.T) {
	vtx, err := CubeVertices(3)
	require.NoError(t, err)
	nrm := CubeNormals()
	idx := CubeSolidIndices()
	for i := 0; i < CubeNumSolid; i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		assert.Equal(t, nrm[a], nrm[b], "triangle %d", i/3)
		assert.Equal(t, nrm[a], nrm[c], "triangle %d", i/3)
		fa, _ := FamilyOf(int(a))
		fb, _ := FamilyOf(int(b))
		fc, _ := FamilyOf(int(c))
		assert.Equal(t, fa, fb)
		assert.Equal(t, fa, fc)

		gn := math32.Normal(vtx[a], vtx[b], vtx[c])
		assert.True(t, gn.IsEqualTol(nrm[a], math32.Tolerance), "triangle %d: %v vs %v", i/3, gn, nrm[a])
	}
}

func TestCubeLineIndices(t *testing.T) {
	idx := CubeLineIndices()
	assert.Len(t, idx, 36)
	for i, ix := range idx {
		assert.Less(t, ix, uint8(24), "index %d", i)
	}

	segs := map[[2]uint8]bool{}
	for i := 0; i < CubeNumLine; i += 2 {
		segs[[2]uint8{idx[i], idx[i+1]}] = true
	}
	assert.Len(t, segs, 18)
	assert.True(t, segs[[2]uint8{0, 1}])
	assert.True(t, segs[[2]uint8{0, 5}])

	vtx, err := CubeVertices(2)
	require.NoError(t, err)
	edges, diagonals := 0, 0
	for s := range segs {
		switch vtx[s[1]].Sub(vtx[s[0]]).LengthSquared() {
		case 4:
			edges++
		case 8:
			diagonals++
		}
	}
	assert.Equal(t, 12, edges)
	assert.Equal(t, 6, diagonals)
}

func TestCubeIdempotent(t *testing.T) {
	v1, err := CubeVertices(7)
	require.NoError(t, err)
	v2, err := CubeVertices(7)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, CubeNormals(), CubeNormals())
	assert.Equal(t, CubeUVs(), CubeUVs())
	assert.Equal(t, CubeSolidIndices(), CubeSolidIndices())
	assert.Equal(t, CubeLineIndices(), CubeLineIndices())
}

func TestCubeCopies(t *testing.T) {
	idx := CubeSolidIndices()
	idx[0] = 99
	nrm := CubeNormals()
	nrm[0] = math32.Vector3{}
	assert.Equal(t, uint8(0), CubeSolidIndices()[0])
	assert.Equal(t, math32.Vec3(0, -1, 0), CubeNormals()[0])
}

func TestCubeConcurrent(t *testing.T) {
	want, err := CubeVertices(5)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := CubeVertices(5)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
			bf, err := NewBuffers(&Cube{Side: 5})
			assert.NoError(t, err)
			assert.Equal(t, want[:], bf.Vertices())
		}()
	}
	wg.Wait()
}

func TestCubeSet(t *testing.T) {
	cb, err := NewCube(2)
	require.NoError(t, err)
	cb.Pos = math32.Vec3(10, 0, 0)
	nv, ni, nl := cb.MeshSize()
	assert.Equal(t, 24, nv)
	assert.Equal(t, 36, ni)
	assert.Equal(t, 36, nl)

	bf, err := NewBuffers(cb)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(9, -1, 1), bf.Vertices()[0])
	assert.Equal(t, math32.B3(math32.Vec3(9, -1, -1), math32.Vec3(11, 1, 1)), cb.MeshBBox())
	assert.Equal(t, cb.MeshBBox(), bf.BBox)
}

func TestCubeValidateExtent(t *testing.T) {
	cb := &Cube{Side: 1e38}
	cb.Pos = math32.Vec3(3e38, 0, 0)
	assert.ErrorIs(t, cb.Validate(), ErrInvalidParameter)
	_, err := NewBuffers(cb)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	cb.Pos = math32.Vec3(1e38, 0, 0)
	assert.NoError(t, cb.Validate())
}

func uniqueIndexes(ix [6]uint8) []uint8 {
	seen := map[uint8]bool{}
	var out []uint8
	for _, i := range ix {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}
