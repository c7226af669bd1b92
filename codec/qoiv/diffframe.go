/*
NAME
  diffframe.go

DESCRIPTION
  diffframe.go implements the DIFFFRAME opcode: a 2-byte, reference-
  keyframe predictor available only to Predicted frames. Its fields are
  bit-packed (not byte-aligned individually), so encode/decode goes
  through github.com/icza/bitio rather than hand-rolled shifts.

  Wire layout (16 bits total, most significant bit first):
    tag(2)=10 | use_index(1) | key_frame(1) | index(6) | dR(2) | dG(2) | dB(2)

  key_frame is reserved for a future multi-reference extension (spec §9
  leaves its exact role to the implementer); this codec always writes it
  0 and ignores its value on read.

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

// DiffFrameOp predicts a pixel from the stored reference keyframe: either
// a slot in its recency-table snapshot (UseIndex true), or the pixel at
// the same (y, x) position in the reference frame itself.
type DiffFrameOp struct {
	useIndex bool
	index    byte
	dr       int8
	dg       int8
	db       int8
}

// NewDiffFrameOp returns a DIFFFRAME opcode. When useIndex is true, index
// selects the reference snapshot-table slot and must be in [0,
// TableSize); when false, index is ignored. Each delta must be in {-2,
// -1, 0, +1}.
func NewDiffFrameOp(useIndex bool, index byte, dr, dg, db int8) (*DiffFrameOp, error) {
	if useIndex && index >= TableSize {
		return nil, ErrOpcodeOutOfRange
	}
	if !inDiffRange(dr) || !inDiffRange(dg) || !inDiffRange(db) {
		return nil, ErrOpcodeOutOfRange
	}
	return &DiffFrameOp{useIndex: useIndex, index: index, dr: dr, dg: dg, db: db}, nil
}

// UseIndex reports whether the base pixel comes from the reference
// snapshot table (true) or the reference frame at the current position
// (false).
func (o *DiffFrameOp) UseIndex() bool { return o.useIndex }

// Index returns the snapshot-table slot, meaningful only when UseIndex
// is true.
func (o *DiffFrameOp) Index() byte { return o.index }

// Delta returns the per-channel deltas applied to the base pixel.
func (o *DiffFrameOp) Delta() (dr, dg, db int8) { return o.dr, o.dg, o.db }

func (o *DiffFrameOp) Kind() Kind { return KindDiffFrame }
func (o *DiffFrameOp) Len() int   { return 2 }

func (o *DiffFrameOp) WriteTo(w *bitio.Writer) error {
	if err := w.WriteBits(0b10, 2); err != nil {
		return err
	}
	if err := w.WriteBool(o.useIndex); err != nil {
		return err
	}
	if err := w.WriteBool(false); err != nil { // key_frame, reserved.
		return err
	}
	if err := w.WriteBits(uint64(o.index), 6); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(o.dr+diffBias), 2); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(o.dg+diffBias), 2); err != nil {
		return err
	}
	return w.WriteBits(uint64(o.db+diffBias), 2)
}

func parseDiffFrame(br *bitio.Reader) (Opcode, error) {
	tagBits, err := br.ReadBits(2)
	if err != nil {
		return nil, wrapEOF(err)
	}
	if tagBits != 0b10 {
		return nil, ErrInvalidOpcode
	}
	useIndex, err := br.ReadBool()
	if err != nil {
		return nil, wrapEOF(err)
	}
	if _, err := br.ReadBool(); err != nil { // key_frame, ignored.
		return nil, wrapEOF(err)
	}
	index, err := br.ReadBits(6)
	if err != nil {
		return nil, wrapEOF(err)
	}
	dr, err := br.ReadBits(2)
	if err != nil {
		return nil, wrapEOF(err)
	}
	dg, err := br.ReadBits(2)
	if err != nil {
		return nil, wrapEOF(err)
	}
	db, err := br.ReadBits(2)
	if err != nil {
		return nil, wrapEOF(err)
	}
	return &DiffFrameOp{
		useIndex: useIndex,
		index:    byte(index),
		dr:       int8(dr) - diffBias,
		dg:       int8(dg) - diffBias,
		db:       int8(db) - diffBias,
	}, nil
}
