// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the structured logger used by the cubemesh tools.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity level of logging messages shown to the user.
// It defaults to Info, or to Debug with the "debug" build tag and to Warn
// with the "release" build tag.
var UserLevel = defaultUserLevel

// New returns a text logger writing to w at [UserLevel],
// or at Debug if verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := UserLevel
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
