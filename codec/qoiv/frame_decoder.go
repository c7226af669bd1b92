/*
NAME
  frame_decoder.go

DESCRIPTION
  frame_decoder.go implements the stream-driven state machine described
  in spec §4.4: peek a tag byte, classify it, read the full opcode,
  apply its semantics, and advance the pixel cursor until the frame is
  full.

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
	"github.com/icza/bitio"
)

// FrameDecoder reconstructs one frame's pixels from its opcode stream. As
// with FrameEncoder, the recency table is owned by the active frame and
// is cleared at construction; construct a fresh FrameDecoder per frame.
type FrameDecoder struct {
	width, height int
	predicted     bool
	ref           *Reference
	table         *Table
}

// NewFrameDecoder returns a FrameDecoder for a width x height frame. ref
// is consulted only when predicted is true.
func NewFrameDecoder(width, height int, predicted bool, ref *Reference) *FrameDecoder {
	return &FrameDecoder{
		width:     width,
		height:    height,
		predicted: predicted,
		ref:       ref,
		table:     NewTable(),
	}
}

// Table returns the decoder's recency table.
func (d *FrameDecoder) Table() *Table { return d.table }

// Decode reads opcodes from peek and reconstructs the frame into dst, a
// row-major RGB buffer of length 3*width*height. peek must be the same
// buffered reader used across the whole stream (see PeekReader): a
// fresh one created per frame would discard whatever it had already
// read ahead from the underlying source.
func (d *FrameDecoder) Decode(peek PeekReader, dst []byte) error {
	count := d.width * d.height
	if len(dst) != 3*count {
		return ErrOverflow
	}

	br := bitio.NewReader(peek)

	var (
		prev    Pixel
		hasPrev bool
	)

	i := 0
	for i < count {
		op, err := ParseNext(peek, br)
		if err != nil {
			return err
		}

		switch o := op.(type) {
		case *RGBOp:
			p := o.Pixel()
			putPixelAt(dst, i, p)
			d.table.Insert(p)
			prev, hasPrev = p, true
			i++

		case *IndexOp:
			p := d.table.Get(o.Index())
			putPixelAt(dst, i, p)
			d.table.Insert(p)
			prev, hasPrev = p, true
			i++

		case *DiffOp:
			dr, dg, db := o.Delta()
			p := prev.add(dr, dg, db)
			putPixelAt(dst, i, p)
			d.table.Insert(p)
			prev, hasPrev = p, true
			i++

		case *DiffFrameOp:
			if !d.predicted || d.ref == nil {
				return ErrInvalidOpcode
			}
			var base Pixel
			if o.UseIndex() {
				base = d.ref.Snapshot.Get(o.Index())
			} else {
				base = pixelAt(d.ref.Pixels, i)
			}
			dr, dg, db := o.Delta()
			p := base.add(dr, dg, db)
			putPixelAt(dst, i, p)
			d.table.Insert(p)
			prev, hasPrev = p, true
			i++

		case *RunOp:
			n := o.Count()
			if i+n > count {
				return ErrOverflow
			}
			if !hasPrev {
				// A run cannot legally be the first opcode of a frame
				// (spec §4.3 edge cases); treat it as a corrupt stream.
				return ErrInvalidOpcode
			}
			for k := 0; k < n; k++ {
				putPixelAt(dst, i, prev)
				i++
			}

		default:
			return ErrInvalidOpcode
		}
	}

	return nil
}
