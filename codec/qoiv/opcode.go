/*
NAME
  opcode.go

DESCRIPTION
  opcode.go defines the Opcode tagged union, its Kind enum, the first-byte
  prefix-classification rule, and the ParseNext dispatcher. Per spec §9
  ("Opcode polymorphism"), classification lives here, not on each variant:
  each variant only knows how to serialize and parse itself once its kind
  is known.

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

// PeekReader is the minimal capability ParseNext needs from its source:
// ordinary reads, plus a Peek that does not advance the read position.
// *bufio.Reader satisfies this; callers own one persistent PeekReader
// per stream so that its internal read-ahead buffer is never discarded
// between frames.
type PeekReader interface {
	io.Reader
	Peek(n int) ([]byte, error)
}

// Kind identifies an opcode's variant.
type Kind int

const (
	KindRGB Kind = iota
	KindIndex
	KindDiff
	KindRun
	KindDiffFrame
	KindFrameRun
)

func (k Kind) String() string {
	switch k {
	case KindRGB:
		return "RGB"
	case KindIndex:
		return "INDEX"
	case KindDiff:
		return "DIFF"
	case KindRun:
		return "RUN"
	case KindDiffFrame:
		return "DIFFFRAME"
	case KindFrameRun:
		return "FRAMERUN"
	default:
		return "UNKNOWN"
	}
}

// First-byte tag prefixes. tagRGB and tagFrameRun are exact-byte matches;
// the rest are tested against the top two bits via tagMask.
const (
	tagRGB      byte = 0xFE
	tagFrameRun byte = 0xFF
	tagMask     byte = 0xC0
	tagIndex    byte = 0x00
	tagDiff     byte = 0x40
	tagDiffFrame byte = 0x80
	tagRun      byte = 0xC0

	diffBias = 2 // DIFF/DIFFFRAME Δ fields are stored biased by +2.
)

// Opcode is one wire-level instruction in a frame's opcode stream.
type Opcode interface {
	// WriteTo serializes the opcode, including its tag byte, to w.
	WriteTo(w *bitio.Writer) error
	// Len is the opcode's encoded size in bytes.
	Len() int
	// Kind identifies the opcode's variant.
	Kind() Kind
}

// classify inspects a tag byte and returns the opcode kind it selects,
// per the ordered tests in spec §4.1. It never consumes input; callers
// peek the tag byte first and pass it in.
func classify(tag byte) Kind {
	switch {
	case tag == tagRGB:
		return KindRGB
	case tag == tagFrameRun:
		return KindFrameRun
	case tag&tagMask == tagDiff:
		return KindDiff
	case tag&tagMask == tagRun:
		return KindRun
	case tag&tagMask == tagDiffFrame:
		return KindDiffFrame
	default: // tag&tagMask == tagIndex
		return KindIndex
	}
}

// ParseNext peeks the next tag byte from peek, classifies it, and reads
// the full opcode from br. peek and br must read from the same
// underlying byte stream (br wraps peek), so that the peek does not
// advance past the byte br subsequently consumes.
func ParseNext(peek PeekReader, br *bitio.Reader) (Opcode, error) {
	tagBytes, err := peek.Peek(1)
	if err != nil {
		return nil, wrapEOF(err)
	}

	switch classify(tagBytes[0]) {
	case KindRGB:
		return parseRGB(br)
	case KindFrameRun:
		return parseFrameRun(br)
	case KindDiff:
		return parseDiff(br)
	case KindRun:
		return parseRun(br)
	case KindDiffFrame:
		return parseDiffFrame(br)
	case KindIndex:
		return parseIndex(br)
	default:
		return nil, ErrInvalidOpcode
	}
}

// wrapEOF normalizes an io.EOF encountered mid-opcode into
// ErrUnexpectedEOF, per spec §4.4's failure modes. A clean EOF between
// frame records is the caller's (container-level) concern, not this
// layer's.
func wrapEOF(err error) error {
	if err == io.EOF {
		return errors.Wrap(ErrUnexpectedEOF, "qoiv: reading opcode tag")
	}
	return errors.Wrap(err, "qoiv: reading opcode tag")
}
