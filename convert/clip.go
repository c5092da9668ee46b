package convert

import "encoding/binary"

// clipTable is the precomputed 1024-entry saturation table: 384 zeros, then
// the 256 values 0..255, then 384 copies of 255. A value in [-384, 639] is
// looked up via clipTable[value+384]; values further out of range saturate
// the same way the table's end zones would.
var clipTable [1024]uint8

func init() {
	for i := range clipTable {
		v := i - 384
		switch {
		case v < 0:
			clipTable[i] = 0
		case v > 255:
			clipTable[i] = 255
		default:
			clipTable[i] = uint8(v)
		}
	}
}

// clip8Table saturates v to [0,255] using the precomputed table, falling
// back to a direct clamp for values outside the table's indexable range.
func clip8Table(v int64) byte {
	idx := v + 384
	if idx < 0 {
		return 0
	}
	if idx > 1023 {
		return 255
	}
	return clipTable[idx]
}

// get16Sample reads a host-native uint16 sample at index i from a
// 16-bit-lane plane.
func get16Sample(plane []byte, i int) uint16 {
	return binary.NativeEndian.Uint16(plane[2*i : 2*i+2])
}
