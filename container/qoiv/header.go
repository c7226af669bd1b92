/*
NAME
  header.go

DESCRIPTION
  header.go implements the 16-byte QOIV file header and the 1-byte
  per-frame header (spec §3, §6).

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Dan Kortschak <dan@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package qoiv provides the QOIV container: the file and frame headers,
// and the session-level Encoder/Decoder that sequence keyframes and
// predicted frames over the codec/qoiv opcode layer.
package qoiv

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/qoiv/container/qoiv/qoivcfg"
)

const (
	magic          = "qoiv"
	fileHeaderSize = 16
)

// FrameType identifies a per-frame record's kind. Only Key and Predicted
// are defined; readFrameHeader rejects any other value.
type FrameType uint8

const (
	FrameTypeKey FrameType = iota
	FrameTypePredicted
)

// fileHeader is the 16-byte preamble described in spec §6.
type fileHeader struct {
	Width, Height uint32
	Colourspace   qoivcfg.Colourspace
}

// writeFileHeader writes the 16-byte file header to w.
func writeFileHeader(w io.Writer, h fileHeader) error {
	var buf [fileHeaderSize]byte
	copy(buf[0:4], magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.Width)
	binary.LittleEndian.PutUint32(buf[8:12], h.Height)
	buf[12] = byte(h.Colourspace)
	// buf[13:16] left zero: padding.
	_, err := w.Write(buf[:])
	return errors.Wrap(err, "qoiv: writing file header")
}

// readFileHeader reads and validates the 16-byte file header from r.
func readFileHeader(r io.Reader) (fileHeader, error) {
	var buf [fileHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fileHeader{}, errors.Wrap(ErrInvalidHeader, "qoiv: reading file header: "+err.Error())
		}
		return fileHeader{}, errors.Wrap(err, "qoiv: reading file header")
	}

	if string(buf[0:4]) != magic {
		return fileHeader{}, errors.Wrapf(ErrInvalidHeader, "qoiv: bad magic %q", buf[0:4])
	}

	cs := qoivcfg.Colourspace(buf[12])
	if cs != qoivcfg.SRGB && cs != qoivcfg.Linear {
		return fileHeader{}, errors.Wrapf(ErrInvalidHeader, "qoiv: bad colourspace %d", buf[12])
	}

	return fileHeader{
		Width:       binary.LittleEndian.Uint32(buf[4:8]),
		Height:      binary.LittleEndian.Uint32(buf[8:12]),
		Colourspace: cs,
	}, nil
}

// writeFrameHeader writes the 1-byte per-frame header to w.
func writeFrameHeader(w io.Writer, t FrameType) error {
	_, err := w.Write([]byte{byte(t)})
	return errors.Wrap(err, "qoiv: writing frame header")
}

// readFrameHeader reads the 1-byte per-frame header from r.
func readFrameHeader(r io.Reader) (FrameType, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			return 0, io.EOF // Clean end of stream; caller's concern.
		}
		return 0, errors.Wrap(err, "qoiv: reading frame header")
	}
	switch FrameType(buf[0]) {
	case FrameTypeKey, FrameTypePredicted:
		return FrameType(buf[0]), nil
	default:
		return 0, errors.Wrapf(ErrInvalidFrameType, "qoiv: unrecognized frame type %d", buf[0])
	}
}
