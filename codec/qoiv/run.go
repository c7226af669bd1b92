/*
NAME
  run.go

DESCRIPTION
  run.go implements the RUN opcode: a count of extra copies of the most
  recently emitted pixel. The hash table is not updated by a run; the
  pixel is already present by definition of how it became "previous".

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

import "github.com/icza/bitio"

// MaxRun is the largest run length a single RUN opcode can encode.
// Lengths 63 and 64 (low bits 0x3E and 0x3F) are excluded to keep every
// RUN byte strictly below tagRGB (0xFE) and tagFrameRun (0xFF).
const MaxRun = 62

// RunOp emits n copies of the previous pixel.
type RunOp struct {
	n int
}

// NewRunOp returns a RunOp for a run of length n. n must be in [1, MaxRun].
func NewRunOp(n int) (*RunOp, error) {
	if n < 1 || n > MaxRun {
		return nil, ErrOpcodeOutOfRange
	}
	return &RunOp{n: n}, nil
}

// Count returns the run length.
func (o *RunOp) Count() int { return o.n }

func (o *RunOp) Kind() Kind { return KindRun }
func (o *RunOp) Len() int   { return 1 }

func (o *RunOp) WriteTo(w *bitio.Writer) error {
	return w.WriteByte(tagRun | byte(o.n-1))
}

func parseRun(br *bitio.Reader) (Opcode, error) {
	tag, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	if tag&tagMask != tagRun {
		return nil, ErrInvalidOpcode
	}
	n := int(tag&0x3F) + 1
	if n > MaxRun {
		return nil, ErrInvalidOpcode
	}
	return &RunOp{n: n}, nil
}
