/*
NAME
  diff.go

DESCRIPTION
  diff.go implements the DIFF opcode: a 1-byte per-channel delta from the
  previous pixel, each channel biased by +2 to fit unsigned 2-bit fields.

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

// DiffOp encodes the reconstructed pixel as (prev + Δ) mod 256 per
// channel, with each Δ in {-2, -1, 0, +1}.
type DiffOp struct {
	dr, dg, db int8
}

// NewDiffOp returns a DiffOp for the given per-channel deltas. Each delta
// must be in {-2, -1, 0, +1}.
func NewDiffOp(dr, dg, db int8) (*DiffOp, error) {
	if !inDiffRange(dr) || !inDiffRange(dg) || !inDiffRange(db) {
		return nil, ErrOpcodeOutOfRange
	}
	return &DiffOp{dr: dr, dg: dg, db: db}, nil
}

// Delta returns the per-channel deltas this opcode applies.
func (o *DiffOp) Delta() (dr, dg, db int8) { return o.dr, o.dg, o.db }

func (o *DiffOp) Kind() Kind { return KindDiff }
func (o *DiffOp) Len() int   { return 1 }

func (o *DiffOp) WriteTo(w *bitio.Writer) error {
	b := tagDiff |
		byte(o.dr+diffBias)<<4 |
		byte(o.dg+diffBias)<<2 |
		byte(o.db+diffBias)
	return w.WriteByte(b)
}

func parseDiff(br *bitio.Reader) (Opcode, error) {
	tag, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	if tag&tagMask != tagDiff {
		return nil, ErrInvalidOpcode
	}
	dr := int8((tag>>4)&0x03) - diffBias
	dg := int8((tag>>2)&0x03) - diffBias
	db := int8(tag&0x03) - diffBias
	return &DiffOp{dr: dr, dg: dg, db: db}, nil
}
