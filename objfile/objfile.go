// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objfile writes [shape.Buffers] as a Wavefront OBJ file,
// with a companion MTL file holding one shaded material for the
// solid triangles and one unlit material for the wireframe lines.
package objfile

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"cogentcore.org/cubemesh/shape"
)

// Material names used for the two index buffers.
const (
	SolidMaterial = "solid"
	LineMaterial  = "line"
)

// Options are the options for writing OBJ and MTL files.
type Options struct {

	// Name is the object name.
	Name string

	// MaterialLib is the MTL file referenced by the OBJ file.
	// It is omitted if empty.
	MaterialLib string

	// SolidColor is the diffuse color of the solid material,
	// which also serves as its ambient color.
	SolidColor color.RGBA

	// LineColor is the constant color of the line material.
	LineColor color.RGBA

	// NoLines omits the wireframe lines.
	NoLines bool
}

// DefaultOptions returns the default options: a blue solid cube
// with white lines.
func DefaultOptions() Options {
	return Options{
		Name:       "cube",
		SolidColor: color.RGBA{4, 120, 255, 255},
		LineColor:  color.RGBA{255, 255, 255, 255},
	}
}

// writer remembers the first write error.
type writer struct {
	w   *bufio.Writer
	err error
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *writer) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Encode writes the given buffers to w in OBJ format.
// Every vertex carries its own texture coordinate and normal,
// so faces use the same 1-based index for all three.
// Texture coordinates have a top-left origin in the buffers and a
// bottom-left origin in OBJ, so v is written as 1-v.
func Encode(w io.Writer, bf *shape.Buffers, opts Options) error {
	ow := &writer{w: bufio.NewWriter(w)}
	ow.printf("# cubemesh: %d vertices, %d triangles, %d lines\n", bf.NumVertex(), len(bf.Index)/3, len(bf.Line)/2)
	if opts.MaterialLib != "" {
		ow.printf("mtllib %s\n", opts.MaterialLib)
	}
	if opts.Name != "" {
		ow.printf("o %s\n", opts.Name)
	}
	for _, v := range bf.Vertices() {
		ow.printf("v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range bf.UVs() {
		ow.printf("vt %g %g\n", uv.X, 1-uv.Y)
	}
	for _, n := range bf.Normals() {
		ow.printf("vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	ow.printf("usemtl %s\ns off\n", SolidMaterial)
	for _, tri := range bf.Triangles() {
		a, b, c := int(tri[0])+1, int(tri[1])+1, int(tri[2])+1
		ow.printf("f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	if !opts.NoLines && len(bf.Line) > 0 {
		ow.printf("usemtl %s\n", LineMaterial)
		for _, seg := range bf.Segments() {
			ow.printf("l %d %d\n", int(seg[0])+1, int(seg[1])+1)
		}
	}
	if err := ow.flush(); err != nil {
		return fmt.Errorf("objfile: writing OBJ: %w", err)
	}
	return nil
}

// EncodeMaterials writes the solid and line materials to w in MTL format.
func EncodeMaterials(w io.Writer, opts Options) error {
	ow := &writer{w: bufio.NewWriter(w)}
	sr, sg, sb := rgb(opts.SolidColor)
	ow.printf("newmtl %s\n", SolidMaterial)
	ow.printf("Ka %g %g %g\n", sr, sg, sb)
	ow.printf("Kd %g %g %g\n", sr, sg, sb)
	ow.printf("d %g\n", float32(opts.SolidColor.A)/255)
	ow.printf("illum 2\n")
	if !opts.NoLines {
		lr, lg, lb := rgb(opts.LineColor)
		ow.printf("\nnewmtl %s\n", LineMaterial)
		ow.printf("Kd %g %g %g\n", lr, lg, lb)
		ow.printf("d %g\n", float32(opts.LineColor.A)/255)
		ow.printf("illum 0\n")
	}
	if err := ow.flush(); err != nil {
		return fmt.Errorf("objfile: writing MTL: %w", err)
	}
	return nil
}

func rgb(c color.RGBA) (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Save writes name.obj and name.mtl into the given directory.
// The MaterialLib option is set to the MTL file name.
func Save(dir, name string, bf *shape.Buffers, opts Options) error {
	opts.MaterialLib = name + ".mtl"
	if err := saveFile(filepath.Join(dir, name+".obj"), func(w io.Writer) error {
		return Encode(w, bf, opts)
	}); err != nil {
		return err
	}
	return saveFile(filepath.Join(dir, opts.MaterialLib), func(w io.Writer) error {
		return EncodeMaterials(w, opts)
	})
}

func saveFile(path string, enc func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = enc(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
