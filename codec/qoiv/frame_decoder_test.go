/*
DESCRIPTION
  frame_decoder_test.go round-trips FrameEncoder output through
  FrameDecoder, for both keyframes and predicted frames against a
  reference keyframe.

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
	"bytes"
	"testing"
)

// roundTrip encodes frame as a keyframe (or predicted, against ref) and
// decodes it back, returning the reconstructed pixels.
func roundTrip(t *testing.T, width, height int, predicted bool, ref *Reference, frame []byte) []byte {
	t.Helper()

	enc := NewFrameEncoder(width, height, predicted, ref)
	var buf bytes.Buffer
	if _, err := enc.EncodeTo(&buf, frame); err != nil {
		t.Fatalf("EncodeTo: %v", err)
	}

	dec := NewFrameDecoder(width, height, predicted, ref)
	dst := make([]byte, len(frame))
	peek := bufio.NewReader(&buf)
	if err := dec.Decode(peek, dst); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return dst
}

func TestFrameRoundTripFlat(t *testing.T) {
	frame := flatFrame(100, Pixel{1, 1, 1})
	got := roundTrip(t, 10, 10, false, nil, frame)
	if !bytes.Equal(got, frame) {
		t.Errorf("round trip mismatch for flat frame")
	}
}

func TestFrameRoundTripDiffs(t *testing.T) {
	frame := pixelsToFrame([]Pixel{{1, 1, 1}, {2, 2, 2}, {1, 2, 3}})
	got := roundTrip(t, 3, 1, false, nil, frame)
	if !bytes.Equal(got, frame) {
		t.Errorf("round trip mismatch for diff frame")
	}
}

func TestFrameRoundTripRandomish(t *testing.T) {
	// A frame with no repeats and no small deltas, forcing RGB literals
	// for every pixel except (0,0,0), which a fresh table already holds
	// in slot 0 and so encodes as INDEX; still must round-trip exactly.
	ps := []Pixel{
		{10, 200, 3}, {250, 1, 99}, {0, 0, 0}, {128, 64, 32},
		{7, 200, 201}, {255, 255, 255}, {1, 250, 13}, {90, 9, 199},
	}
	frame := pixelsToFrame(ps)
	got := roundTrip(t, len(ps), 1, false, nil, frame)
	if !bytes.Equal(got, frame) {
		t.Errorf("round trip mismatch for RGB-heavy frame")
	}
}

// TestFrameRoundTripPredicted reproduces spec scenario S5: a keyframe
// followed by a predicted frame that decodes via DIFFFRAME opcodes and a
// trailing RUN for its repeated last pixel.
func TestFrameRoundTripPredicted(t *testing.T) {
	key := pixelsToFrame([]Pixel{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}})
	keyEnc := NewFrameEncoder(4, 1, false, nil)
	var keyBuf bytes.Buffer
	if _, err := keyEnc.EncodeTo(&keyBuf, key); err != nil {
		t.Fatalf("keyframe EncodeTo: %v", err)
	}

	keyDec := NewFrameDecoder(4, 1, false, nil)
	keyDst := make([]byte, len(key))
	if err := keyDec.Decode(bufio.NewReader(&keyBuf), keyDst); err != nil {
		t.Fatalf("keyframe Decode: %v", err)
	}
	if !bytes.Equal(keyDst, key) {
		t.Fatalf("keyframe round trip mismatch")
	}

	ref := &Reference{Pixels: keyDst, Snapshot: keyDec.Table().Snapshot()}

	predicted := pixelsToFrame([]Pixel{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {3, 3, 3}})
	got := roundTrip(t, 4, 1, true, ref, predicted)
	if !bytes.Equal(got, predicted) {
		t.Errorf("predicted frame round trip mismatch")
	}
}

func TestDecodeOverflowRejectsBadDst(t *testing.T) {
	dec := NewFrameDecoder(4, 4, false, nil)
	if err := dec.Decode(bufio.NewReader(bytes.NewReader(nil)), make([]byte, 5)); err != ErrOverflow {
		t.Errorf("Decode with wrong-size dst = %v, want ErrOverflow", err)
	}
}

func TestDecodeRunBeforeAnyPixelIsInvalid(t *testing.T) {
	// A bare RUN opcode as the very first byte of a frame is illegal:
	// "previous pixel" is undefined at position 0.
	run, err := NewRunOp(5)
	if err != nil {
		t.Fatal(err)
	}
	raw := writeOpcode(t, run)

	dec := NewFrameDecoder(10, 1, false, nil)
	dst := make([]byte, 30)
	if err := dec.Decode(bufio.NewReader(bytes.NewReader(raw)), dst); err != ErrInvalidOpcode {
		t.Errorf("Decode starting with RUN = %v, want ErrInvalidOpcode", err)
	}
}
