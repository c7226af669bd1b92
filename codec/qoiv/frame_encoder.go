/*
NAME
  frame_encoder.go

DESCRIPTION
  frame_encoder.go implements the per-pixel decision engine described in
  spec §4.3: a single-pass, greedy encoder that picks the smallest opcode
  able to reproduce each pixel, given the previous pixel, the recency
  table, a run accumulator, and (for Predicted frames) a reference
  keyframe.

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

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// FrameEncoder encodes one frame's pixels into an opcode sequence. It
// owns a recency table for the duration of the frame; per spec §9, the
// table is cleared at the start of every frame (keyframe or predicted),
// so callers construct a fresh FrameEncoder per frame.
type FrameEncoder struct {
	width, height int
	predicted     bool
	ref           *Reference // nil unless predicted and a reference is available.
	table         *Table
}

// NewFrameEncoder returns a FrameEncoder for a width x height frame. ref
// is consulted only when predicted is true; it may be nil (e.g. the
// first frame of a stream is always a keyframe and has no reference).
func NewFrameEncoder(width, height int, predicted bool, ref *Reference) *FrameEncoder {
	return &FrameEncoder{
		width:     width,
		height:    height,
		predicted: predicted,
		ref:       ref,
		table:     NewTable(),
	}
}

// Table returns the encoder's recency table. A keyframe encoder's table,
// read after Encode/EncodeTo returns, is the snapshot the session encoder
// retains for later Predicted frames (spec §3).
func (e *FrameEncoder) Table() *Table { return e.table }

// Encode returns the ordered opcode sequence that reproduces frame, a
// row-major RGB buffer of length 3*width*height.
func (e *FrameEncoder) Encode(frame []byte) ([]Opcode, error) {
	var ops []Opcode
	err := e.run(frame, func(op Opcode) error {
		ops = append(ops, op)
		return nil
	})
	return ops, err
}

// EncodeTo serializes frame directly to w without materializing the
// opcode list, mirroring the io.Writer-driven style of this codec
// family's other frame writers. It returns the number of bytes written.
func (e *FrameEncoder) EncodeTo(w io.Writer, frame []byte) (int, error) {
	bw := bitio.NewWriter(w)
	n := 0
	err := e.run(frame, func(op Opcode) error {
		if err := op.WriteTo(bw); err != nil {
			return err
		}
		n += op.Len()
		return nil
	})
	if err != nil {
		return n, err
	}
	return n, bw.Close()
}

// run drives the decision procedure of spec §4.3, calling emit for each
// opcode chosen, in order.
func (e *FrameEncoder) run(frame []byte, emit func(Opcode) error) error {
	count := e.width * e.height
	if len(frame) != 3*count {
		return errors.Errorf("qoiv: frame buffer length %d does not match %dx%d", len(frame), e.width, e.height)
	}

	var (
		prev    Pixel
		hasPrev bool
		r       int
	)

	flush := func() error {
		if r == 0 {
			return nil
		}
		op, err := NewRunOp(r)
		if err != nil {
			return err
		}
		r = 0
		return emit(op)
	}

	for i := 0; i < count; i++ {
		p := pixelAt(frame, i)

		if hasPrev && p == prev {
			if r < MaxRun {
				r++
				continue
			}
			op, err := NewRunOp(MaxRun)
			if err != nil {
				return err
			}
			if err := emit(op); err != nil {
				return err
			}
			r = 1
			continue
		}

		if err := flush(); err != nil {
			return err
		}

		op, err := e.encodePixel(p, hasPrev, prev, i)
		if err != nil {
			return err
		}
		if err := emit(op); err != nil {
			return err
		}

		e.table.Insert(p)
		prev = p
		hasPrev = true
	}

	return flush()
}

// encodePixel chooses the smallest opcode able to reproduce p, following
// the priority order of spec §4.3 step 4.
func (e *FrameEncoder) encodePixel(p Pixel, hasPrev bool, prev Pixel, i int) (Opcode, error) {
	if e.predicted && e.ref != nil {
		if e.ref.Snapshot.Contains(p) {
			return NewDiffFrameOp(true, e.ref.Snapshot.IndexOf(p), 0, 0, 0)
		}
		if pixelAt(e.ref.Pixels, i) == p {
			return NewDiffFrameOp(false, 0, 0, 0, 0)
		}
	}

	if e.table.Contains(p) {
		return NewIndexOp(e.table.IndexOf(p))
	}

	if hasPrev {
		dr, dg, db := delta(prev, p)
		if inDiffRange(dr) && inDiffRange(dg) && inDiffRange(db) {
			return NewDiffOp(dr, dg, db)
		}
	}

	return NewRGBOp(p)
}
