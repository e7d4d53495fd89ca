package decoders

import "github.com/n8jr/tpmsd/bitmap"

// seekPreamble searches all of src[:srcLenBits] for ascii, returning its
// start position or -1. Every decoder's first real step is this search.
func seekPreamble(src []byte, srcLenBits int, ascii string) int {
	return bitmap.SeekBits(src, srcLenBits, 0, srcLenBits, ascii)
}

// packBits copies the first count bits of decodedBits (packed MSB-first,
// decodedLen valid bits) into a fresh byte-packed, MSB-first payload of
// the given byte length. Protocol payloads rarely divide evenly into 8
// bits; any leftover bits in the final byte are zero-padded.
func packBits(decodedBits []byte, decodedLen, count, payloadBytes int) []byte {
	payload := make([]byte, payloadBytes)
	bitmap.Copy(payload, payloadBytes*8, 0, decodedBits, decodedLen, 0, count)
	return payload
}

// allZero reports whether every byte of b is zero. A payload of all
// zeros passes several of the weaker checksums trivially, so decoders
// reject it before validating.
func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// pulsesCountFromOffsets reports the raw-bit span a decode consumed,
// preamble included. For Manchester-family codes it counts source bits
// (two per data bit); downstream treats it only as a display-span hint
// and tolerates up to 2x discrepancy.
func pulsesCountFromOffsets(off, decoded, startOff int) int {
	return off + decoded*2 - startOff
}
