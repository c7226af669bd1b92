/*
DESCRIPTION
  pixel_test.go tests the Pixel hash, add, delta and inDiffRange helpers.

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

import "testing"

func TestPixelHash(t *testing.T) {
	tests := []struct {
		p    Pixel
		want byte
	}{
		{Pixel{0, 0, 0}, 0},
		{Pixel{1, 0, 0}, 3},
		{Pixel{0, 1, 0}, 5},
		{Pixel{0, 0, 1}, 7},
		{Pixel{1, 1, 1}, 15 % 64},
		{Pixel{255, 255, 255}, byte((3*255 + 5*255 + 7*255) % 64)},
	}
	for _, test := range tests {
		if got := test.p.hash(); got != test.want {
			t.Errorf("hash(%v) = %d, want %d", test.p, got, test.want)
		}
	}
}

func TestPixelAddWraps(t *testing.T) {
	p := Pixel{R: 255, G: 0, B: 1}
	got := p.add(1, -1, 1)
	want := Pixel{R: 0, G: 255, B: 2}
	if got != want {
		t.Errorf("add wrapped incorrectly: got %v, want %v", got, want)
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	prev := Pixel{R: 10, G: 200, B: 0}
	p := Pixel{R: 12, G: 198, B: 255}
	dr, dg, db := delta(prev, p)
	if got := prev.add(dr, dg, db); got != p {
		t.Errorf("prev.add(delta(prev, p)) = %v, want %v", got, p)
	}
}

func TestInDiffRange(t *testing.T) {
	tests := []struct {
		d    int8
		want bool
	}{
		{-2, true},
		{-1, true},
		{0, true},
		{1, true},
		{2, false},
		{-3, false},
		{127, false},
		{-128, false},
	}
	for _, test := range tests {
		if got := inDiffRange(test.d); got != test.want {
			t.Errorf("inDiffRange(%d) = %v, want %v", test.d, got, test.want)
		}
	}
}
