/*
NAME
  encoder.go

DESCRIPTION
  encoder.go implements the session encoder described in spec §4.5: it
  sequences Key and Predicted frames over a byte sink, tracks keyframe
  cadence, and (in adaptive mode) speculatively encodes a frame both
  ways to pick the smaller.

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
	"bytes"
	"io"

	"github.com/pkg/errors"

	codecqoiv "github.com/ausocean/qoiv/codec/qoiv"
	"github.com/ausocean/qoiv/container/qoiv/qoivcfg"
)

// flusher is implemented by byte sinks that buffer internally, such as
// *bufio.Writer. Flush is a no-op on sinks that don't implement it.
type flusher interface {
	Flush() error
}

// Encoder sequences a stream of frames into the QOIV container format:
// a file header, followed by Key/Predicted frame records. It is the
// only place the codec performs speculative (encode-twice) work, in
// adaptive mode (spec §4.5).
type Encoder struct {
	dst io.Writer
	cfg qoivcfg.Config
	log qoivcfg.Logger

	started        bool
	framesSinceKey uint32
	forceKeyframe  bool
	ref            *codecqoiv.Reference
}

// NewEncoder constructs an Encoder over dst and immediately writes the
// 16-byte file header. cfg.KeyframeInterval must be at least 1.
func NewEncoder(dst io.Writer, cfg qoivcfg.Config) (*Encoder, error) {
	if cfg.KeyframeInterval == 0 {
		return nil, errors.New("qoiv: KeyframeInterval must be at least 1")
	}
	if cfg.Logger == nil {
		cfg.Logger = qoivcfg.NopLogger{}
	}

	if err := writeFileHeader(dst, fileHeader{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Colourspace: cfg.Colourspace,
	}); err != nil {
		return nil, err
	}

	return &Encoder{dst: dst, cfg: cfg, log: cfg.Logger}, nil
}

// TriggerKeyframe forces the next call to Push to encode a keyframe,
// regardless of cadence.
func (e *Encoder) TriggerKeyframe() {
	e.forceKeyframe = true
}

// Flush flushes the underlying byte sink, if it buffers internally.
func (e *Encoder) Flush() error {
	if f, ok := e.dst.(flusher); ok {
		return errors.Wrap(f.Flush(), "qoiv: flushing sink")
	}
	return nil
}

// Push encodes frame (a row-major RGB buffer of length 3*Width*Height)
// and writes its frame record to the sink.
func (e *Encoder) Push(frame []byte) error {
	switch {
	case !e.started || e.forceKeyframe:
		return e.commitKeyframe(frame)

	case e.framesSinceKey < e.cfg.KeyframeInterval:
		return e.commitPredicted(frame)

	case e.cfg.MaxKeyframeInterval == 0 || e.framesSinceKey >= e.cfg.MaxKeyframeInterval:
		return e.commitKeyframe(frame)

	default:
		return e.pushAdaptive(frame)
	}
}

// pushAdaptive encodes frame both as Predicted and as Key, measures the
// two serialized sizes, and commits whichever is smaller (spec §4.5).
func (e *Encoder) pushAdaptive(frame []byte) error {
	predBuf, _, err := e.encodeVariant(true, frame)
	if err != nil {
		return err
	}
	keyBuf, keyTable, err := e.encodeVariant(false, frame)
	if err != nil {
		return err
	}

	if keyBuf.Len() < predBuf.Len() {
		e.log.Log(qoivcfg.LevelDebug, "adaptive encode chose keyframe", "predBytes", predBuf.Len(), "keyBytes", keyBuf.Len())
		return e.commitEncoded(FrameTypeKey, keyBuf, frame, keyTable)
	}
	e.log.Log(qoivcfg.LevelDebug, "adaptive encode chose predicted frame", "predBytes", predBuf.Len(), "keyBytes", keyBuf.Len())
	return e.commitEncoded(FrameTypePredicted, predBuf, frame, nil)
}

func (e *Encoder) commitKeyframe(frame []byte) error {
	buf, table, err := e.encodeVariant(false, frame)
	if err != nil {
		return err
	}
	return e.commitEncoded(FrameTypeKey, buf, frame, table)
}

func (e *Encoder) commitPredicted(frame []byte) error {
	buf, _, err := e.encodeVariant(true, frame)
	if err != nil {
		return err
	}
	return e.commitEncoded(FrameTypePredicted, buf, frame, nil)
}

// commitEncoded writes the frame header and already-encoded opcode
// bytes, then updates the session's cadence and reference-keyframe
// state. table is the encoding frame encoder's table, and is only used
// (as the new snapshot) when t is FrameTypeKey.
func (e *Encoder) commitEncoded(t FrameType, buf *bytes.Buffer, frame []byte, table *codecqoiv.Table) error {
	if err := writeFrameHeader(e.dst, t); err != nil {
		return err
	}
	if _, err := e.dst.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "qoiv: writing opcode stream")
	}

	e.started = true
	e.forceKeyframe = false

	if t == FrameTypeKey {
		pixels := make([]byte, len(frame))
		copy(pixels, frame)
		e.ref = &codecqoiv.Reference{Pixels: pixels, Snapshot: table.Snapshot()}
		e.framesSinceKey = 0
		e.log.Log(qoivcfg.LevelDebug, "encoded keyframe", "bytes", buf.Len())
	} else {
		e.framesSinceKey++
		e.log.Log(qoivcfg.LevelDebug, "encoded predicted frame", "bytes", buf.Len(), "framesSinceKey", e.framesSinceKey)
	}

	return nil
}

// encodeVariant runs the frame encoder for frame as either predicted or
// keyframe, returning the serialized opcode stream and the resulting
// recency table (needed by the caller only for keyframes, to become the
// next snapshot).
func (e *Encoder) encodeVariant(predicted bool, frame []byte) (*bytes.Buffer, *codecqoiv.Table, error) {
	var ref *codecqoiv.Reference
	if predicted {
		ref = e.ref
	}
	fe := codecqoiv.NewFrameEncoder(int(e.cfg.Width), int(e.cfg.Height), predicted, ref)
	var buf bytes.Buffer
	if _, err := fe.EncodeTo(&buf, frame); err != nil {
		return nil, nil, err
	}
	return &buf, fe.Table(), nil
}
