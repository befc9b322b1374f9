// Package ircode decodes and builds the 32-bit code words used by the
// pico infrared rig.
//
// The capture side reports each byte most-significant-bit first, while
// the transmitter firmware consumes a conventional
// least-significant-bit-first 32-bit word, so every captured byte is
// bit-reversed before the word is assembled.
package ircode

// ReverseByte mirrors the bit order of the low 8 bits of b: bit 7
// swaps with bit 0, bit 6 with bit 1, and so on. Three swap-and-merge
// steps of decreasing group size: nibbles, bit pairs, adjacent bits.
//
// The masks are byte-internal, so the first step discards any bits
// above bit 7; ReverseByte(b) equals ReverseByte(b & 0xFF) for every
// input, negatives included. Upstream values are byte values 0-255, so
// nothing meaningful is lost.
func ReverseByte(b int) int {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// PackWord assembles four already bit-reversed byte values into a
// little-endian word: b0 occupies bits 0-7, b3 bits 24-31.
func PackWord(b0, b1, b2, b3 int) int {
	return b0 | b1<<8 | b2<<16 | b3<<24
}
