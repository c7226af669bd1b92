/*
DESCRIPTION
  qoivlog_test.go checks that NewFileLogger produces a usable
  qoivcfg.Logger and that logging through it creates the backing file.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package qoivlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/qoiv/container/qoiv/qoivcfg"
)

func TestNewFileLoggerSatisfiesConfigLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qoiv.log")
	l := NewFileLogger(path, logging.Info, false)

	var _ qoivcfg.Logger = l // Must satisfy the session Encoder/Decoder's Logger.

	l.SetLevel(qoivcfg.LevelWarning)
	l.Log(qoivcfg.LevelError, "disk full", "bytes", 42)

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist after logging: %v", path, err)
	}
}
