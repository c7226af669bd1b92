/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the container-level error taxonomy (spec §7):
  InvalidHeader and InvalidFrameType. Opcode-layer errors
  (InvalidOpcode, OpcodeOutOfRange, UnexpectedEof, Overflow) live in
  codec/qoiv and are propagated unchanged; IoError is any wrapped
  failure from the underlying byte sink/source, which this package
  never hides behind a sentinel, per spec §7's "propagated verbatim".

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package qoiv

import "errors"

var (
	ErrInvalidHeader    = errors.New("qoiv: invalid file header")
	ErrInvalidFrameType = errors.New("qoiv: invalid frame type")
)
