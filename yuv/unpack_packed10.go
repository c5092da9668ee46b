package yuv

import "encoding/binary"

// packed10ByteOrder selects the 32-bit word order used to read a v210-like
// packed 10-bit group.
type packed10ByteOrder int

const (
	packed10BigEndian packed10ByteOrder = iota
	packed10LittleEndian
)

func readWord32(src []byte, order packed10ByteOrder) uint32 {
	if order == packed10BigEndian {
		return binary.BigEndian.Uint32(src)
	}
	return binary.LittleEndian.Uint32(src)
}

// unpackPacked10 unpacks the v210-like packed 10-bit 4:2:2 layout: groups of
// four 32-bit words encode six pixels, each word holding three 10-bit
// fields. This is the classic "READ_PIXELS" grouping:
//
//	word0: U0 Y0 V0
//	word1: Y1 U2 Y2
//	word2: V2 Y3 U4
//	word3: Y4 V4 Y5
//
// giving Y0..Y5 at full resolution and U0/V0, U2/V2, U4/V4 each shared by
// their adjacent pixel pair. w must be a multiple of 6.
func unpackPacked10(dst *Frame444, raw []byte, w, h int, order packed10ByteOrder) error {
	const groupPixels = 6
	const groupBytes = 16

	y, u, v := dst.Y(), dst.U(), dst.V()

	for row := 0; row < h; row++ {
		rowOff := row * w
		srcRowOff := row * (w / groupPixels) * groupBytes
		groups := w / groupPixels
		for g := 0; g < groups; g++ {
			base := srcRowOff + g*groupBytes
			w0 := readWord32(raw[base:base+4], order)
			w1 := readWord32(raw[base+4:base+8], order)
			w2 := readWord32(raw[base+8:base+12], order)
			w3 := readWord32(raw[base+12:base+16], order)

			u0 := w0 & 0x3FF
			y0 := (w0 >> 10) & 0x3FF
			v0 := (w0 >> 20) & 0x3FF

			y1 := w1 & 0x3FF
			u2 := (w1 >> 10) & 0x3FF
			y2 := (w1 >> 20) & 0x3FF

			v2 := w2 & 0x3FF
			y3 := (w2 >> 10) & 0x3FF
			u4 := (w2 >> 20) & 0x3FF

			y4 := w3 & 0x3FF
			v4 := (w3 >> 10) & 0x3FF
			y5 := (w3 >> 20) & 0x3FF

			pixBase := rowOff + g*groupPixels
			ys := [6]uint32{y0, y1, y2, y3, y4, y5}
			us := [6]uint32{u0, u0, u2, u2, u4, u4}
			vs := [6]uint32{v0, v0, v2, v2, v4, v4}
			for i := 0; i < groupPixels; i++ {
				di := pixBase + i
				put16(y, di, leftJustify(uint16(ys[i]), 10))
				put16(u, di, leftJustify(uint16(us[i]), 10))
				put16(v, di, leftJustify(uint16(vs[i]), 10))
			}
		}
	}
	return nil
}
