// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/cubemesh/math32"
	"cogentcore.org/cubemesh/objfile"
	"cogentcore.org/cubemesh/shape"
)

// dump is the serialized form of [shape.Buffers]. Indexes are
// written as 32-bit numbers so that encoders do not treat them as bytes.
type dump struct {
	Vertex   math32.ArrayF32 `json:"vertex" yaml:"vertex" toml:"vertex"`
	Normal   math32.ArrayF32 `json:"normal" yaml:"normal" toml:"normal"`
	TexCoord math32.ArrayF32 `json:"texcoord" yaml:"texcoord" toml:"texcoord"`
	Index    math32.ArrayU32 `json:"index" yaml:"index" toml:"index"`
	Line     math32.ArrayU32 `json:"line" yaml:"line" toml:"line"`
}

func newDump(bf *shape.Buffers) *dump {
	return &dump{
		Vertex:   bf.Vertex,
		Normal:   bf.Normal,
		TexCoord: bf.TexCoord,
		Index:    bf.Index32(),
		Line:     bf.Line32(),
	}
}

// write writes the buffers in the configured format, to the
// configured output file or else to stdout.
func write(cf *Config, bf *shape.Buffers, stdout io.Writer) error {
	if cf.Format == "obj" {
		return writeObj(cf, bf, stdout)
	}
	if cf.Output == "" {
		return encode(cf.Format, newDump(bf), stdout)
	}
	f, err := os.Create(cf.Output)
	if err != nil {
		return err
	}
	err = encode(cf.Format, newDump(bf), f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func encode(format string, d *dump, w io.Writer) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(d)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func writeObj(cf *Config, bf *shape.Buffers, stdout io.Writer) error {
	opts, err := cf.ObjOptions()
	if err != nil {
		return err
	}
	if cf.Output == "" {
		return objfile.Encode(stdout, bf, opts)
	}
	dir, file := filepath.Split(cf.Output)
	return objfile.Save(dir, strings.TrimSuffix(file, filepath.Ext(file)), bf, opts)
}
