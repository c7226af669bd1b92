/*
NAME
  pixel.go

DESCRIPTION
  pixel.go defines the Pixel type and the channel arithmetic shared by the
  QOIV opcode layer: the recency-table hash function and the wrap-around
  delta used by DIFF and DIFFFRAME.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package qoiv implements the QOIV lossless video codec: a bit-packed
// tagged opcode stream, a 64-slot recency hash table, and the per-frame
// encode/decode state machines built on top of them.
package qoiv

// Pixel is an RGB pixel. Colour space is metadata carried by the file
// header, not by the pixel itself; it does not affect coding.
type Pixel struct {
	R, G, B byte
}

// hash returns the recency table slot for p: (3r + 5g + 7b) mod 64. This
// formula is fixed and part of the wire format; it must never change.
func (p Pixel) hash() byte {
	return byte((3*uint16(p.R) + 5*uint16(p.G) + 7*uint16(p.B)) % 64)
}

// add returns p shifted by the per-channel delta (dr, dg, db), wrapping
// modulo 256 per channel.
func (p Pixel) add(dr, dg, db int8) Pixel {
	return Pixel{
		R: p.R + byte(dr),
		G: p.G + byte(dg),
		B: p.B + byte(db),
	}
}

// delta returns the per-channel signed difference from prev to p, taking
// the shortest wrap-around path in [-128, 127]. Used to test whether a
// pixel falls in DIFF's canonical range before committing to that opcode.
func delta(prev, p Pixel) (dr, dg, db int8) {
	return int8(p.R - prev.R), int8(p.G - prev.G), int8(p.B - prev.B)
}

// inDiffRange reports whether d is one of DIFF's four canonical values,
// {-2, -1, 0, +1}. Wrapped values outside this set force an RGB opcode.
func inDiffRange(d int8) bool {
	return d >= -2 && d <= 1
}
