package yuv

import (
	"encoding/binary"

	"github.com/sktmfaker/yuvframe/format"
)

// byteOrder selects which encoding/binary.ByteOrder to read a named-endian
// source format with; Native formats are read with the same NativeEndian
// lane the Frame444 buffer stores samples in, so no conversion is needed
// beyond the left-justify shift.
type byteOrder int

const (
	orderLE byteOrder = iota
	orderBE
	orderNative
)

func highBitDepthParams(tag format.Tag) (bits int, order byteOrder) {
	switch tag {
	case format.YCbCr444_12LE_p:
		return 12, orderLE
	case format.YCbCr444_12BE_p:
		return 12, orderBE
	case format.YCbCr444_16LE_p:
		return 16, orderLE
	case format.YCbCr444_16BE_p:
		return 16, orderBE
	case format.YCbCr444_12Native_p:
		return 12, orderNative
	case format.YCbCr444_16Native_p:
		return 16, orderNative
	case format.GBR12in16LE_p:
		return 12, orderLE
	default:
		return 0, orderNative
	}
}

func readSample(src []byte, i int, order byteOrder) uint16 {
	switch order {
	case orderLE:
		return binary.LittleEndian.Uint16(src[2*i : 2*i+2])
	case orderBE:
		return binary.BigEndian.Uint16(src[2*i : 2*i+2])
	default:
		return binary.NativeEndian.Uint16(src[2*i : 2*i+2])
	}
}

// unpackHighBitDepth444 unpacks planar 4:4:4 (no chroma subsampling) 12- or
// 16-bit samples, in the named byte order, into the host-native 16-bit lane
// Frame444 stores samples in, left-justifying sub-16-bit payloads.
//
// GBR12in16LE_p carries its three planes in green/blue/red order rather
// than luma/chroma order; this unpacker is agnostic to that distinction and
// simply places plane 0 into the Y slot, plane 1 into U, and plane 2 into V
// — channel semantics beyond the plane layout are a concern of whatever
// consumes the decoded samples, not of the unpacker.
func unpackHighBitDepth444(dst *Frame444, raw []byte, w, h int, tag format.Tag) error {
	bits, order := highBitDepthParams(tag)
	n := w * h
	planes := [3][]byte{dst.Y(), dst.U(), dst.V()}
	for p := 0; p < 3; p++ {
		src := raw[p*2*n : (p+1)*2*n]
		dstPlane := planes[p]
		for i := 0; i < n; i++ {
			v := readSample(src, i, order)
			if bits < 16 {
				v = leftJustify(v, bits)
			}
			put16(dstPlane, i, v)
		}
	}
	return nil
}
