// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cubemesh builds the flat-shaded cube mesh and writes its
// attribute and index buffers as JSON, YAML, TOML or a Wavefront OBJ file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/cubemesh/logx"
	"cogentcore.org/cubemesh/shape"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("cubemesh", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cf := &Config{}
	cf.Defaults()

	fs := flag.NewFlagSet("cubemesh", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config := fs.String("config", "", "TOML config `file` to read before applying flags")
	verbose := fs.Bool("v", false, "log debug messages")
	var fl Config
	fl.Defaults()
	side := fs.Float64("side", float64(fl.Side), "side length of each cube")
	fs.IntVar(&fl.Count, "count", fl.Count, "number of cubes, lined up along X")
	spacing := fs.Float64("spacing", float64(fl.Spacing), "gap between adjacent cubes")
	fs.StringVar(&fl.Format, "format", fl.Format, "output format: json, yaml, toml or obj")
	fs.StringVar(&fl.Output, "out", fl.Output, "output `file`; standard output if empty")
	fs.BoolVar(&fl.NoLines, "no-lines", fl.NoLines, "omit wireframe lines from obj output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logger := logx.New(stderr, *verbose)
	slog.SetDefault(logger)

	if *config != "" {
		if err := cf.Open(*config); err != nil {
			return err
		}
		logger.Debug("read config", "file", *config)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "side":
			cf.Side = float32(*side)
		case "count":
			cf.Count = fl.Count
		case "spacing":
			cf.Spacing = float32(*spacing)
		case "format":
			cf.Format = fl.Format
		case "out":
			cf.Output = fl.Output
		case "no-lines":
			cf.NoLines = fl.NoLines
		}
	})
	if err := cf.Validate(); err != nil {
		return err
	}

	gp, err := shape.NewCubeRow(cf.Count, cf.Side, cf.Spacing)
	if err != nil {
		return err
	}
	var ms shape.Mesh = gp
	if cf.Count == 1 {
		ms = gp.Shapes[0]
	}
	bf, err := shape.NewBuffers(ms)
	if err != nil {
		return err
	}
	logger.Debug("built mesh", "cubes", cf.Count, "side", cf.Side, "vertices", bf.NumVertex(),
		"triangles", len(bf.Index)/3, "lines", len(bf.Line)/2)

	if err := write(cf, bf, stdout); err != nil {
		return err
	}
	if cf.Output != "" {
		logger.Info("wrote mesh", "format", cf.Format, "file", cf.Output)
	}
	return nil
}
