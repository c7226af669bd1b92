/*
NAME
  table.go

DESCRIPTION
  table.go implements the fixed-size, direct-mapped recency hash table
  shared by the frame encoder and decoder. See spec §3 and §4.2.

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

// TableSize is the number of slots in the recency table.
const TableSize = 64

// Table is a 64-slot direct-mapped cache of recently-seen pixels, keyed by
// Pixel.hash. It has no tags and no collision chain: a slot holds whatever
// pixel was last inserted at that index, and "P is present" means
// "table[hash(P)] == P exactly".
//
// The zero value is not ready for use; construct with NewTable, which
// clears every slot to (0,0,0) per spec §3.
type Table struct {
	slots [TableSize]Pixel
}

// NewTable returns a Table with every slot cleared to (0,0,0).
func NewTable() *Table {
	return &Table{}
}

// Insert overwrites the slot at p's hash with p unconditionally.
func (t *Table) Insert(p Pixel) {
	t.slots[p.hash()] = p
}

// Contains reports whether p currently occupies its hash slot.
func (t *Table) Contains(p Pixel) bool {
	return t.slots[p.hash()] == p
}

// IndexOf returns p's hash slot. It does not check membership; callers
// that need to know whether p actually occupies the slot should call
// Contains first.
func (t *Table) IndexOf(p Pixel) byte {
	return p.hash()
}

// Get returns the pixel currently stored at slot i. i must be in [0, 64).
func (t *Table) Get(i byte) Pixel {
	return t.slots[i]
}

// Clear resets every slot to (0,0,0).
func (t *Table) Clear() {
	t.slots = [TableSize]Pixel{}
}

// Snapshot returns an independent copy of the table's current contents,
// used by the session encoder to retain a keyframe's recency state for
// later predicted frames (spec §3, "Reference keyframe").
func (t *Table) Snapshot() *Table {
	cp := *t
	return &cp
}
