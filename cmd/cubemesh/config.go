// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/cubemesh/objfile"
)

// Formats are the supported output formats.
var Formats = []string{"json", "yaml", "toml", "obj"}

// Config is the configuration for the cubemesh tool,
// read from a TOML file and then overridden by flags.
type Config struct {

	// Side is the side length of each cube.
	Side float32 `toml:"side"`

	// Count is the number of cubes, lined up along the X axis.
	Count int `toml:"count"`

	// Spacing is the gap between adjacent cubes.
	Spacing float32 `toml:"spacing"`

	// Format is the output format: json, yaml, toml or obj.
	Format string `toml:"format"`

	// Output is the output file; standard output if empty.
	// For obj, a companion .mtl file is written next to it.
	Output string `toml:"output"`

	// SolidColor is the hex color of the solid material (obj only).
	SolidColor string `toml:"solid_color"`

	// LineColor is the hex color of the line material (obj only).
	LineColor string `toml:"line_color"`

	// NoLines omits the wireframe lines from obj output.
	NoLines bool `toml:"no_lines"`
}

// Defaults sets the default values, which build the single
// 15 unit cube of the original demo.
func (cf *Config) Defaults() {
	cf.Side = 15
	cf.Count = 1
	cf.Spacing = 0
	cf.Format = "json"
	cf.SolidColor = "#0478ff"
	cf.LineColor = "#ffffff"
}

// Open reads the given TOML file over the current values.
func (cf *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(b, cf); err != nil {
		return fmt.Errorf("config %s: %w", filename, err)
	}
	return nil
}

// Validate checks the settings that the mesh builder does not.
func (cf *Config) Validate() error {
	cf.Format = strings.ToLower(cf.Format)
	for _, f := range Formats {
		if cf.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q: must be one of %s", cf.Format, strings.Join(Formats, ", "))
}

// ObjOptions returns the [objfile.Options] for the config.
func (cf *Config) ObjOptions() (objfile.Options, error) {
	opts := objfile.DefaultOptions()
	opts.NoLines = cf.NoLines
	var err error
	if opts.SolidColor, err = parseHex(cf.SolidColor); err != nil {
		return opts, fmt.Errorf("solid color: %w", err)
	}
	if opts.LineColor, err = parseHex(cf.LineColor); err != nil {
		return opts, fmt.Errorf("line color: %w", err)
	}
	return opts, nil
}

// parseHex parses a #rrggbb or #rrggbbaa color.
func parseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	hex := strings.TrimPrefix(s, "#")
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	if err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}
