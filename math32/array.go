// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for reading and writing packed vectors.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// GetVector3 returns the Vector3 starting at the specified position
// in the array, in terms of floats, not vectors.
func (a ArrayF32) GetVector3(pos int) Vector3 {
	return Vector3{a[pos], a[pos+1], a[pos+2]}
}

// GetVector2 returns the Vector2 starting at the specified position
// in the array, in terms of floats, not vectors.
func (a ArrayF32) GetVector2(pos int) Vector2 {
	return Vector2{a[pos], a[pos+1]}
}

// SetVector3 sets the values of the array at the specified pos
// from the XYZ values of the specified Vector3
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	a[pos] = v.X
	a[pos+1] = v.Y
	a[pos+2] = v.Z
}

// SetVector2 sets the values of the array at the specified pos
// from the XY values of the specified Vector2
func (a ArrayF32) SetVector2(pos int, v Vector2) {
	a[pos] = v.X
	a[pos+1] = v.Y
}

// ArrayU8 is a slice of uint8 indexes, the narrowest index width
// a GPU accepts. It addresses at most 256 vertices.
type ArrayU8 []uint8

// NewArrayU8 creates a returns a new array of uint8
// with the specified initial size and capacity
func NewArrayU8(size, capacity int) ArrayU8 {
	return make([]uint8, size, capacity)
}

// ToU32 returns a copy of the array widened to 32-bit indexes.
func (a ArrayU8) ToU32() ArrayU32 {
	out := make(ArrayU32, len(a))
	for i, v := range a {
		out[i] = uint32(v)
	}
	return out
}

// ArrayU32 is a slice of uint32 indexes.
type ArrayU32 []uint32
