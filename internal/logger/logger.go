// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger configures the go-logging backends shared by the
// randlib packages and commands.
package logger

import (
	"io"
	"strings"

	logging "github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{time:15:04:05.000} %{module:-14s} %{level:.4s} | %{message}"

// LogLevelFlag selects the verbosity of a command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   `level of logging ("critical", "error", "warning", "notice", "info", "debug")`,
	Value:   "warning",
}

// ParseLevel returns the go-logging level named by level, ignoring
// case. Unknown names give INFO and ok == false.
func ParseLevel(level string) (lvl logging.Level, ok bool) {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return logging.INFO, false
	}
	return lvl, true
}

// SetupBackend directs every module's log records to w, filtered at
// level, and returns the leveled backend so callers can adjust
// individual modules later.
func SetupBackend(w io.Writer, level string) logging.LeveledBackend {
	lvl, _ := ParseLevel(level)
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return leveled
}
