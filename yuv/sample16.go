package yuv

import "encoding/binary"

// put16 stores a 16-bit sample into plane at sample index i, using the host's
// native byte order (matching Frame444's documented in-memory layout for
// 16-bit-lane samples).
func put16(plane []byte, i int, v uint16) {
	binary.NativeEndian.PutUint16(plane[2*i:2*i+2], v)
}

// get16 reads a 16-bit sample from plane at sample index i, native-endian.
func get16(plane []byte, i int) uint16 {
	return binary.NativeEndian.Uint16(plane[2*i : 2*i+2])
}

// leftJustify shifts a sample of the given bit depth into the top bits of a
// 16-bit lane, as Frame444 documents for sub-16-bit payloads.
func leftJustify(v uint16, bits int) uint16 {
	return v << (16 - bits)
}
