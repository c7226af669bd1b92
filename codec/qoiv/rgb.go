/*
NAME
  rgb.go

DESCRIPTION
  rgb.go implements the RGB opcode: a literal pixel, the 4-byte fallback
  used when no shorter opcode applies.

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

// RGBOp is a literal pixel: tag 0xFE followed by three raw bytes.
type RGBOp struct {
	pixel Pixel
}

// NewRGBOp returns an RGBOp encoding p. RGB has no out-of-range fields, so
// construction never fails; the error return keeps the constructor shape
// consistent with the other opcodes.
func NewRGBOp(p Pixel) (*RGBOp, error) {
	return &RGBOp{pixel: p}, nil
}

// Pixel returns the literal pixel this opcode encodes.
func (o *RGBOp) Pixel() Pixel { return o.pixel }

func (o *RGBOp) Kind() Kind { return KindRGB }
func (o *RGBOp) Len() int   { return 4 }

func (o *RGBOp) WriteTo(w *bitio.Writer) error {
	if err := w.WriteByte(tagRGB); err != nil {
		return err
	}
	if err := w.WriteByte(o.pixel.R); err != nil {
		return err
	}
	if err := w.WriteByte(o.pixel.G); err != nil {
		return err
	}
	return w.WriteByte(o.pixel.B)
}

// parseRGB reads an RGB opcode's payload. The tag byte itself is consumed
// here too, since ParseNext only peeked it.
func parseRGB(br *bitio.Reader) (Opcode, error) {
	tag, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	if tag != tagRGB {
		return nil, ErrInvalidOpcode
	}
	r, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	g, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	b, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	return &RGBOp{pixel: Pixel{R: r, G: g, B: b}}, nil
}
