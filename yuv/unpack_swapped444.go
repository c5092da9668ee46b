package yuv

import (
	"encoding/binary"
	"math/bits"
)

// unpackSwapped444 unpacks planar 4:4:4 12- or 16-bit samples whose byte
// order is always the reverse of the host's native order (e.g. a big-endian
// capture device feeding a little-endian decoder, or vice versa): each
// 16-bit lane is byte-swapped relative to a native read, then left-justified
// if the payload is narrower than 16 bits.
func unpackSwapped444(dst *Frame444, raw []byte, w, h, bitDepth int) error {
	n := w * h
	planes := [3][]byte{dst.Y(), dst.U(), dst.V()}
	for p := 0; p < 3; p++ {
		src := raw[p*2*n : (p+1)*2*n]
		dstPlane := planes[p]
		for i := 0; i < n; i++ {
			v := bits.ReverseBytes16(binary.NativeEndian.Uint16(src[2*i : 2*i+2]))
			if bitDepth < 16 {
				v = leftJustify(v, bitDepth)
			}
			put16(dstPlane, i, v)
		}
	}
	return nil
}
