// Package yuv unpacks any supported raw pixel layout into a planar 4:4:4
// buffer at the format's native bit depth, upsampling subsampled chroma
// along the way. This is the "Unpacker / Upsampler" component: its output
// feeds the convert package's YUV→RGB matrixing.
package yuv

import (
	"github.com/pkg/errors"

	"github.com/sktmfaker/yuvframe/format"
)

// InterpMode selects the chroma reconstruction positioning used when
// upsampling YCbCr420_8p chroma to 4:4:4. Every other subsampled format
// (4:2:2, 4:1:1, 10-bit 4:2:0) uses sample-and-hold replication whatever
// the mode.
type InterpMode int

const (
	// BiLinear reconstructs chroma assuming the chroma sample lies midway
	// between two luma lines ("bilinear midway").
	BiLinear InterpMode = iota
	// Interstitial reconstructs chroma assuming the sample lies at the
	// center of a 2x2 luma block.
	Interstitial
)

// Frame444 is a planar 4:4:4 Y/Cb/Cr buffer. Samples are stored at either
// 8 or 16 bits: SampleBits == 8 means one byte per sample; SampleBits == 16
// means each sample is a host-endian uint16 occupying two bytes, with
// 10/12-bit payloads left-justified into the top bits of the 16-bit lane.
//
// Data concatenates the three planes Y | U | V, each Width*Height samples
// (Width*Height*SampleBits/8 bytes) long. The buffer is owned by the
// decoder and reused across calls to ToYUV444.
type Frame444 struct {
	Width, Height int
	SampleBits    int
	Data          []byte
}

// planeBytes returns the byte length of a single plane.
func (f *Frame444) planeBytes() int {
	return f.Width * f.Height * (f.SampleBits / 8)
}

// ensure resizes f to hold w x h samples at sampleBits depth, reusing the
// existing backing array when it is already large enough.
func (f *Frame444) ensure(w, h, sampleBits int) {
	f.Width, f.Height, f.SampleBits = w, h, sampleBits
	need := 3 * f.planeBytes()
	if cap(f.Data) < need {
		f.Data = make([]byte, need)
	} else {
		f.Data = f.Data[:need]
	}
}

// Y returns the luma plane.
func (f *Frame444) Y() []byte { n := f.planeBytes(); return f.Data[0:n] }

// U returns the Cb plane.
func (f *Frame444) U() []byte { n := f.planeBytes(); return f.Data[n : 2*n] }

// V returns the Cr plane.
func (f *Frame444) V() []byte { n := f.planeBytes(); return f.Data[2*n : 3*n] }

// ErrUnsupportedFormat is returned by ToYUV444 when the source pixel
// format has no unpacking rule (including format.Unknown).
var ErrUnsupportedFormat = errors.New("yuv: unsupported source pixel format")

// sampleBitsFor returns the in-memory container width (8 or 16) used for
// tag's unpacked samples: 8 for 8-bit source formats, 16 for everything
// else (10-/12-/16-bit payloads are left-justified into the 16-bit lane).
func sampleBitsFor(tag format.Tag) int {
	if format.BitsPerSample(tag) == 8 {
		return 8
	}
	return 16
}

// ToYUV444 converts raw into dst, a planar 4:4:4 buffer at tag's native
// sample width, upsampling any subsampled chroma using mode. dst is
// resized as needed and its previous contents are overwritten.
func ToYUV444(dst *Frame444, raw []byte, tag format.Tag, w, h int, mode InterpMode) error {
	d, ok := format.Lookup(tag)
	if !ok || tag == format.Unknown {
		return errors.Wrapf(ErrUnsupportedFormat, "tag %v", tag)
	}

	sampleBits := sampleBitsFor(tag)
	dst.ensure(w, h, sampleBits)

	switch tag {
	case format.Gray8:
		return unpackGray8(dst, raw, w, h)
	case format.UYVY422_8:
		return unpackUYVY422(dst, raw, w, h)
	case format.UYVY422_YCbCr10_packed:
		return unpackPacked10(dst, raw, w, h, packed10BigEndian)
	case format.YCbCr422_10_packed:
		return unpackPacked10(dst, raw, w, h, packed10LittleEndian)
	case format.YCbCr420_8p:
		switch mode {
		case Interstitial:
			return unpack420Interstitial(dst, raw, w, h)
		default:
			return unpack420BiLinear(dst, raw, w, h)
		}
	case format.YCbCr420_10LE_p:
		return unpack420_10LE(dst, raw, w, h)
	case format.YCbCr444_12Swapped_p, format.YCbCr444_16Swapped_p:
		return unpackSwapped444(dst, raw, w, h, d.BitsPerSample)
	case format.YCbCr444_12LE_p, format.YCbCr444_12BE_p, format.YCbCr444_16LE_p,
		format.YCbCr444_16BE_p, format.YCbCr444_12Native_p, format.YCbCr444_16Native_p,
		format.GBR12in16LE_p:
		return unpackHighBitDepth444(dst, raw, w, h, tag)
	default:
		// Any other 8-bit planar format: 4:1:1, 4:2:2, 4:4:4, and their
		// YCrCb (reversed plane order) variants, via nearest-neighbor
		// sample-and-hold chroma replication.
		if d.Planar && d.BitsPerSample == 8 {
			return unpackPlanarNearest(dst, raw, w, h, d, format.IsReversedChroma(tag))
		}
		return errors.Wrapf(ErrUnsupportedFormat, "tag %v has no unpacking rule", tag)
	}
}
