/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the session decoder: the read-side counterpart
  to encoder.go. It reads the file header once, then on each call to
  Next reads a frame header and the matching opcode stream, handing the
  shared reference-keyframe lifecycle to the per-frame FrameDecoder
  exactly as the session encoder does on the write side (spec §3,
  §4.5.1 supplement).

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
	"bufio"
	"io"

	"github.com/pkg/errors"

	codecqoiv "github.com/ausocean/qoiv/codec/qoiv"
	"github.com/ausocean/qoiv/container/qoiv/qoivcfg"
)

// Decoder reads a QOIV stream frame by frame.
type Decoder struct {
	// src is a single persistent buffered reader over the whole stream.
	// It must not be rewrapped per frame: codec/qoiv's opcode classifier
	// peeks ahead, and a fresh bufio.Reader discards whatever the old
	// one had already buffered from the underlying source.
	src *bufio.Reader
	log qoivcfg.Logger

	Width, Height uint32
	Colourspace   qoivcfg.Colourspace

	ref *codecqoiv.Reference
}

// NewDecoder constructs a Decoder over src and reads the 16-byte file
// header, exposing Width, Height and Colourspace.
func NewDecoder(src io.Reader, log qoivcfg.Logger) (*Decoder, error) {
	if log == nil {
		log = qoivcfg.NopLogger{}
	}
	br := bufio.NewReader(src)
	h, err := readFileHeader(br)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		src:         br,
		log:         log,
		Width:       h.Width,
		Height:      h.Height,
		Colourspace: h.Colourspace,
	}, nil
}

// Next reads and decodes the next frame record, or returns io.EOF if the
// stream is exhausted at a frame boundary. A short read mid-frame is
// reported as ErrUnexpectedEOF-wrapping error from the codec layer, not
// io.EOF, per spec §9's "no file-level terminator" note.
func (d *Decoder) Next() ([]byte, FrameType, error) {
	t, err := readFrameHeader(d.src)
	if err != nil {
		return nil, 0, err // Propagates a clean io.EOF verbatim.
	}

	predicted := t == FrameTypePredicted
	if predicted && d.ref == nil {
		return nil, 0, errors.New("qoiv: predicted frame with no prior keyframe")
	}

	fd := codecqoiv.NewFrameDecoder(int(d.Width), int(d.Height), predicted, d.ref)
	dst := make([]byte, 3*int(d.Width)*int(d.Height))
	if err := fd.Decode(d.src, dst); err != nil {
		return nil, 0, err
	}

	if t == FrameTypeKey {
		d.ref = &codecqoiv.Reference{Pixels: dst, Snapshot: fd.Table().Snapshot()}
		d.log.Log(qoivcfg.LevelDebug, "decoded keyframe")
	} else {
		d.log.Log(qoivcfg.LevelDebug, "decoded predicted frame")
	}

	return dst, t, nil
}
