/*
NAME
  qoivlog.go

DESCRIPTION
  qoivlog.go constructs a qoivcfg.Logger backed by a rotating log file,
  for callers that don't already have their own logging.Logger to hand
  in. It wires github.com/ausocean/utils/logging (the structured,
  level-gated logger used throughout this codec family) to a lumberjack
  rotating file sink, the same pairing cmd/rv/main.go uses for its
  netsender client.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package qoivlog provides a rotating-file-backed implementation of
// qoivcfg.Logger, for standalone use of the container/qoiv package outside
// a host that already provides its own logger.
package qoivlog

import (
	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSize    = 100 // MB
	defaultMaxBackups = 10
	defaultMaxAge     = 28 // days
)

// NewFileLogger returns a logging.Logger, writing level-gated, structured
// log lines to path via a rotating lumberjack file, at the given minimum
// level (e.g. logging.Debug, logging.Info). The returned type satisfies
// qoivcfg.Logger: a session Encoder or Decoder can take it directly.
//
// suppress controls whether logging.New suppresses its own panic-recovery
// diagnostics to the log (see the logging package).
func NewFileLogger(path string, level int8, suppress bool) logging.Logger {
	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSize,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAge,
	}
	return logging.New(level, out, suppress)
}
