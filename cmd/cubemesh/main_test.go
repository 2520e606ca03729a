// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cogentcore.org/cubemesh/shape"
)

func TestRunJSON(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(nil, &out, &logs))

	var d dump
	require.NoError(t, json.Unmarshal(out.Bytes(), &d))
	assert.Len(t, d.Vertex, 72)
	assert.Len(t, d.Normal, 72)
	assert.Len(t, d.TexCoord, 48)
	assert.Len(t, d.Index, 36)
	assert.Len(t, d.Line, 36)
	assert.Equal(t, []float32{-7.5, -7.5, 7.5}, []float32(d.Vertex[:3]))
	assert.Equal(t, []uint32{0, 2, 1}, []uint32(d.Index[:3]))
}

func TestRunYAML(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"-format", "yaml", "-side", "2", "-count", "2", "-spacing", "1"}, &out, &logs))

	var d dump
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &d))
	assert.Len(t, d.Vertex, 144)
	assert.Len(t, d.Index, 72)
	assert.Equal(t, uint32(24), d.Index[36])
	assert.Equal(t, []float32{-2.5, -1, 1}, []float32(d.Vertex[:3]))
}

func TestRunTOMLFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "cube.toml")
	var logs bytes.Buffer
	require.NoError(t, run([]string{"-format", "toml", "-out", fn}, &bytes.Buffer{}, &logs))
	assert.Contains(t, logs.String(), "wrote mesh")

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	var d dump
	require.NoError(t, toml.Unmarshal(b, &d))
	assert.Len(t, d.Line, 36)
	assert.Equal(t, []uint32{0, 1}, []uint32(d.Line[:2]))
}

func TestRunObj(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "cube.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("format = \"obj\"\nside = 1\n"), 0666))

	var out, logs bytes.Buffer
	require.NoError(t, run([]string{"-config", cfg, "-side", "2", "-v"}, &out, &logs))
	assert.Contains(t, out.String(), "v -1 -1 1\n")
	assert.Contains(t, out.String(), "l 1 6\n")
	assert.Contains(t, logs.String(), "read config")
	assert.Contains(t, logs.String(), "built mesh")

	objfn := filepath.Join(dir, "mesh.obj")
	require.NoError(t, run([]string{"-config", cfg, "-out", objfn, "-no-lines"}, &out, &logs))
	b, err := os.ReadFile(objfn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "mtllib mesh.mtl\n")
	assert.False(t, strings.Contains(string(b), "\nl "))
	_, err = os.Stat(filepath.Join(dir, "mesh.mtl"))
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	var out, logs bytes.Buffer
	assert.ErrorIs(t, run([]string{"-side", "0"}, &out, &logs), shape.ErrInvalidParameter)
	assert.ErrorIs(t, run([]string{"-side", "-1"}, &out, &logs), shape.ErrInvalidParameter)
	assert.ErrorIs(t, run([]string{"-count", "11", "-side", "1"}, &out, &logs), shape.ErrIndexOverflow)
	assert.ErrorContains(t, run([]string{"-format", "stl"}, &out, &logs), "unknown format")
	assert.ErrorContains(t, run([]string{"extra"}, &out, &logs), "unexpected arguments")
	assert.ErrorIs(t, run([]string{"-h"}, &out, &logs), flag.ErrHelp)
	assert.Error(t, run([]string{"-config", "does-not-exist.toml"}, &out, &logs))
	assert.ErrorIs(t, run([]string{"-side", "1e39"}, &out, &logs), shape.ErrInvalidParameter)
	assert.ErrorIs(t, run([]string{"-side", "3e38", "-spacing", "3e38"}, &out, &logs), shape.ErrInvalidParameter)
	assert.ErrorIs(t, run([]string{"-side", "3e38", "-count", "3"}, &out, &logs), shape.ErrInvalidParameter)
}

func TestRunDefaultLogger(t *testing.T) {
	def := slog.Default()
	t.Cleanup(func() { slog.SetDefault(def) })

	var out, logs bytes.Buffer
	err := run([]string{"-side", "0"}, &out, &logs)
	require.ErrorIs(t, err, shape.ErrInvalidParameter)
	slog.Error("cubemesh", "err", err)
	assert.Contains(t, logs.String(), "level=ERROR msg=cubemesh")
	assert.Contains(t, logs.String(), "invalid parameter")
}
