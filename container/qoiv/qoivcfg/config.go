/*
NAME
  config.go

DESCRIPTION
  config.go contains the configuration settings for a QOIV session
  encoder or decoder: stream dimensions, colour space, keyframe cadence,
  and the logger used for session diagnostics.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package qoivcfg contains the configuration settings for a QOIV stream.
package qoivcfg

// Colourspace identifies the interpretation of a stream's RGB channels.
// It is metadata only: it does not affect coding, per spec §3.
type Colourspace uint8

// The two colour spaces QOIV carries in its file header.
const (
	SRGB   Colourspace = 0
	Linear Colourspace = 1
)

// Logger is the diagnostic sink a session Encoder/Decoder logs through.
// Its shape matches revid.Logger: a level-gated, structured key/value
// log call.
type Logger interface {
	SetLevel(int8)
	Log(level int8, message string, params ...interface{})
}

// Log levels, matching the conventional netlogger severities used
// throughout this codec family.
const (
	LevelDebug int8 = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// NopLogger discards everything logged to it. It is the default when a
// Config is constructed without an explicit Logger.
type NopLogger struct{}

func (NopLogger) SetLevel(int8)                    {}
func (NopLogger) Log(int8, string, ...interface{}) {}

// Config collects the settings needed to construct a QOIV session
// Encoder or Decoder.
type Config struct {
	// Width and Height are the fixed frame dimensions for the whole
	// stream.
	Width, Height uint32

	// Colourspace is written to the file header as metadata.
	Colourspace Colourspace

	// KeyframeInterval is the number of frames between keyframes; the
	// first frame of a stream is always a keyframe regardless of this
	// value.
	KeyframeInterval uint32

	// MaxKeyframeInterval, when non-zero, enables adaptive mode: once
	// KeyframeInterval has elapsed, the encoder may extend up to this
	// hard bound, encoding each candidate frame both ways and emitting
	// whichever is smaller (spec §4.5).
	MaxKeyframeInterval uint32

	// Logger receives session-level diagnostics. A nil Logger is
	// replaced with NopLogger by NewEncoder/NewDecoder.
	Logger Logger
}
