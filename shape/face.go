// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/cubemesh/math32"

// Family is a face family of the cube: a pair of opposite faces
// sharing one axis, served by one duplicate of the corner set.
type Family int32

const (
	// FamilyY is bottom and top, served by vertices 0 to 7.
	FamilyY Family = iota

	// FamilyZ is front and back, served by vertices 8 to 15.
	FamilyZ

	// FamilyX is left and right, served by vertices 16 to 23.
	FamilyX
)

func (f Family) String() string {
	switch f {
	case FamilyY:
		return "bottom/top"
	case FamilyZ:
		return "front/back"
	case FamilyX:
		return "left/right"
	}
	return "unknown"
}

// FamilyOf returns the face family served by the given cube vertex,
// and false if it is outside the cube vertex pool.
func FamilyOf(vertex int) (Family, bool) {
	if vertex < 0 || vertex >= CubeNumVertex {
		return 0, false
	}
	return Family(vertex / CubeNumCorners), true
}

// Face is one of the six faces of the cube, in the order
// they appear in [CubeSolidIndices].
type Face int32

const (
	Bottom Face = iota
	Back
	Left
	Right
	Front
	Top

	// FacesN is the number of faces.
	FacesN
)

var faceNames = [FacesN]string{"bottom", "back", "left", "right", "front", "top"}

func (f Face) String() string {
	if f < 0 || f >= FacesN {
		return "unknown"
	}
	return faceNames[f]
}

// Family returns the face family of the face.
func (f Face) Family() Family {
	switch f {
	case Back, Front:
		return FamilyZ
	case Left, Right:
		return FamilyX
	}
	return FamilyY
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() math32.Vector3 {
	switch f {
	case Bottom:
		return math32.Vec3(0, -1, 0)
	case Back:
		return math32.Vec3(0, 0, -1)
	case Left:
		return math32.Vec3(-1, 0, 0)
	case Right:
		return math32.Vec3(1, 0, 0)
	case Front:
		return math32.Vec3(0, 0, 1)
	}
	return math32.Vec3(0, 1, 0)
}

// CubeFaceIndices returns the two solid triangles of the given face.
// An unknown face returns all zeros.
func CubeFaceIndices(f Face) [6]uint8 {
	var ix [6]uint8
	if f < 0 || f >= FacesN {
		return ix
	}
	copy(ix[:], cubeSolid[int(f)*6:])
	return ix
}
