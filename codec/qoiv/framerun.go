/*
NAME
  framerun.go

DESCRIPTION
  framerun.go reserves the FRAMERUN tag prefix for a run of frames
  identical to the previous one (spec §4.1, §9). The source this codec
  is ported from never finished this opcode and spec.md leaves its wire
  layout as an open question; per §9's guidance ("implementers SHOULD
  reserve the tag prefix but MAY defer behavior"), this codec reserves
  the prefix and returns ErrNotImplemented rather than guessing at a
  layout. The frame encoder never emits it; round-trip tests exclude it.

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

// FrameRunOp is the reserved, unimplemented frame-run opcode. Its tag,
// 0xFF, sits in the otherwise-unused corner of the RUN prefix's byte
// range (RUN's maximum valid byte is 0xFD), so it collides with neither
// RUN nor RGB (0xFE).
type FrameRunOp struct{}

func (o *FrameRunOp) Kind() Kind { return KindFrameRun }
func (o *FrameRunOp) Len() int   { return 2 }

func (o *FrameRunOp) WriteTo(w *bitio.Writer) error {
	return ErrNotImplemented
}

func parseFrameRun(br *bitio.Reader) (Opcode, error) {
	return nil, ErrNotImplemented
}
