/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the error taxonomy shared by the codec and container
  layers (see spec §7). Sentinel values are compared with errors.Is; any
  error that wraps an underlying cause (a short read, an I/O failure) is
  built with github.com/pkg/errors so the sentinel survives the wrap.

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

// Sentinel errors for the codec layer. OpcodeOutOfRange is always a
// programmer error caught at opcode construction, before any byte is
// written; the rest are data/stream errors surfaced while decoding.
var (
	ErrOpcodeOutOfRange = errors.New("qoiv: opcode field out of range")
	ErrInvalidOpcode    = errors.New("qoiv: tag byte does not match any known opcode prefix")
	ErrUnexpectedEOF    = errors.New("qoiv: stream ended mid-opcode or mid-frame")
	ErrOverflow         = errors.New("qoiv: decoded pixel count would exceed frame size")
	ErrNotImplemented   = errors.New("qoiv: opcode reserved for future use")
)
