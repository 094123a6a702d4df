// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

const (
	// BitsPerByte is the number of addressable bit positions in a byte
	BitsPerByte = 8
)

// bitMask returns the mask selecting position, or 0 if position is out of range
func bitMask(position uint) byte {
	return byte(1 << position)
}

// ReadBit reports whether the bit at position is set. Position 0 is the
// least significant bit; positions from 8 upwards always read as false.
func ReadBit(b byte, position uint) bool {
	return b&bitMask(position) != 0
}

// WriteBit returns b with the bit at position set to bit. All other bits are
// unchanged, and so is b as a whole when position is 8 or more.
func WriteBit(b byte, bit bool, position uint) byte {
	mask := bitMask(position)
	if bit {
		return b | mask
	}
	return b &^ mask
}
