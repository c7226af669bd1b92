/*
NAME
  index.go

DESCRIPTION
  index.go implements the INDEX opcode: a reference to a slot in the
  recency table, whose content becomes the decoded pixel.

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

// IndexOp references slot Index in the recency table; the slot's current
// content is the decoded pixel. Tag top bits are 00, so the wire byte is
// the index itself.
type IndexOp struct {
	index byte
}

// NewIndexOp returns an IndexOp for slot i. i must be in [0, TableSize).
func NewIndexOp(i byte) (*IndexOp, error) {
	if i >= TableSize {
		return nil, ErrOpcodeOutOfRange
	}
	return &IndexOp{index: i}, nil
}

// Index returns the referenced table slot.
func (o *IndexOp) Index() byte { return o.index }

func (o *IndexOp) Kind() Kind { return KindIndex }
func (o *IndexOp) Len() int   { return 1 }

func (o *IndexOp) WriteTo(w *bitio.Writer) error {
	return w.WriteByte(tagIndex | o.index)
}

func parseIndex(br *bitio.Reader) (Opcode, error) {
	tag, err := br.ReadByte()
	if err != nil {
		return nil, wrapEOF(err)
	}
	if tag&tagMask != tagIndex {
		return nil, ErrInvalidOpcode
	}
	return &IndexOp{index: tag & 0x3F}, nil
}
