/*
DESCRIPTION
  session_test.go round-trips the session Encoder and Decoder over a
  multi-frame stream, covering fixed keyframe cadence, adaptive mode, and
  a forced keyframe mid-stream.

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
	"testing"

	"github.com/ausocean/qoiv/container/qoiv/qoivcfg"
)

const testW, testH = 4, 1

// flatPixels returns count copies of p as a row-major RGB buffer.
func flatPixels(count int, r, g, b byte) []byte {
	buf := make([]byte, 3*count)
	for i := 0; i < count; i++ {
		buf[3*i], buf[3*i+1], buf[3*i+2] = r, g, b
	}
	return buf
}

func decodeAll(t *testing.T, raw []byte) ([][]byte, []FrameType) {
	t.Helper()
	dec, err := NewDecoder(bytes.NewReader(raw), nil)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	var frames [][]byte
	var types []FrameType
	for {
		f, ft, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		frames = append(frames, f)
		types = append(types, ft)
	}
	return frames, types
}

func TestSessionRoundTripFixedCadence(t *testing.T) {
	cfg := qoivcfg.Config{
		Width:            testW,
		Height:           testH,
		Colourspace:      qoivcfg.SRGB,
		KeyframeInterval: 2,
	}
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, cfg)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	want := [][]byte{
		flatPixels(testW, 1, 1, 1),
		flatPixels(testW, 1, 1, 1),
		flatPixels(testW, 2, 2, 2),
		flatPixels(testW, 3, 3, 3),
	}
	for _, f := range want {
		if err := enc.Push(f); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got, types := decodeAll(t, buf.Bytes())
	if len(got) != len(want) {
		t.Fatalf("decoded %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("frame %d mismatch: got %v, want %v", i, got[i], want[i])
		}
	}
	if types[0] != FrameTypeKey {
		t.Errorf("frame 0 type = %v, want Key", types[0])
	}
}

func TestSessionRoundTripAdaptive(t *testing.T) {
	cfg := qoivcfg.Config{
		Width:               testW,
		Height:              testH,
		Colourspace:         qoivcfg.SRGB,
		KeyframeInterval:    1,
		MaxKeyframeInterval: 5,
	}
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, cfg)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	want := [][]byte{
		flatPixels(testW, 1, 1, 1),
		flatPixels(testW, 1, 1, 1),
		flatPixels(testW, 2, 2, 2),
		flatPixels(testW, 9, 8, 7),
		flatPixels(testW, 9, 8, 7),
	}
	for _, f := range want {
		if err := enc.Push(f); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got, _ := decodeAll(t, buf.Bytes())
	if len(got) != len(want) {
		t.Fatalf("decoded %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("frame %d mismatch: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSessionTriggerKeyframe(t *testing.T) {
	cfg := qoivcfg.Config{
		Width:            testW,
		Height:           testH,
		Colourspace:      qoivcfg.SRGB,
		KeyframeInterval: 100, // Large enough that cadence alone wouldn't force a keyframe.
	}
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, cfg)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	if err := enc.Push(flatPixels(testW, 1, 1, 1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	enc.TriggerKeyframe()
	if err := enc.Push(flatPixels(testW, 2, 2, 2)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	_, types := decodeAll(t, buf.Bytes())
	if len(types) != 2 || types[0] != FrameTypeKey || types[1] != FrameTypeKey {
		t.Fatalf("types = %v, want [Key, Key]", types)
	}
}

func TestNewEncoderRejectsZeroKeyframeInterval(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewEncoder(&buf, qoivcfg.Config{Width: 1, Height: 1})
	if err == nil {
		t.Fatal("expected an error for KeyframeInterval == 0")
	}
}
