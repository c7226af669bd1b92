/*
NAME
  reference.go

DESCRIPTION
  reference.go defines Reference, the decoded keyframe plus its
  end-of-encoding recency-table snapshot that Predicted frames may
  consult (spec §3, "Reference keyframe"). Reference is owned by the
  session encoder/decoder and is read-only to any per-frame encoder or
  decoder that consumes it.

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

// Reference is the most recently decoded (or encoded) keyframe, retained
// so that following Predicted frames can encode against it until the
// next keyframe replaces it.
type Reference struct {
	// Pixels is the keyframe's decoded row-major RGB data, 3*W*H bytes.
	Pixels []byte
	// Snapshot is the recency table state captured at the end of the
	// keyframe's encoding, per spec §9's fix to the source's ambiguity.
	Snapshot *Table
}

// pixelAt returns the pixel at row-major index i in buf.
func pixelAt(buf []byte, i int) Pixel {
	off := 3 * i
	return Pixel{R: buf[off], G: buf[off+1], B: buf[off+2]}
}

// putPixelAt writes p into buf at row-major index i.
func putPixelAt(buf []byte, i int, p Pixel) {
	off := 3 * i
	buf[off] = p.R
	buf[off+1] = p.G
	buf[off+2] = p.B
}
