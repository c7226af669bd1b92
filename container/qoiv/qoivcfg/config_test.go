/*
DESCRIPTION
  config_test.go tests the NopLogger and log level constants.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package qoivcfg

import "testing"

func TestNopLoggerDiscardsEverything(t *testing.T) {
	var l Logger = NopLogger{}
	// Must not panic for any level or argument shape.
	l.SetLevel(LevelDebug)
	l.Log(LevelFatal, "unreachable condition", "key", "value", "extra")
}

func TestLevelOrdering(t *testing.T) {
	levels := []int8{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("levels not strictly increasing at index %d: %d <= %d", i, levels[i], levels[i-1])
		}
	}
}
