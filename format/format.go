// Package format implements the pixel-format registry: a static table
// mapping each supported raw YUV/RGB pixel layout to its sample geometry
// (bit depth, average bits per pixel, chroma subsampling, planarity).
//
// The registry never mutates after init and exposes pure queries, as
// specified for the Format Registry component: unknown tags answer with
// sentinel zeros rather than an error, so callers can probe a tag cheaply
// before committing to a decode.
package format

import (
	"github.com/pkg/errors"

	"github.com/sktmfaker/yuvframe/internal/ylog"
)

// Tag identifies a supported pixel format.
type Tag int

// The closed set of supported pixel formats.
const (
	Unknown Tag = iota
	RGB32
	RGB24
	BGR24
	YCbCr411_8p
	YCbCr420_8p
	YCbCr422_8p
	UYVY422_8
	YCbCr422_10_packed
	YCbCr444_8p
	YCbCr444_12LE_p
	YCbCr444_12BE_p
	YCbCr444_16LE_p
	YCbCr444_16BE_p
	YCbCr444_12Native_p
	YCbCr444_12Swapped_p
	YCbCr444_16Native_p
	YCbCr444_16Swapped_p
	Gray8
	GBR12in16LE_p
	YCbCr420_10LE_p
	YCrCb422_8p
	YCrCb444_8p
	UYVY422_YCbCr10_packed
)

// Descriptor carries the static sample geometry for a pixel format.
type Descriptor struct {
	Name            string
	BitsPerSample   int
	BppNominator    int
	BppDenominator  int
	SubsamplingHorz int // 0 means "no chroma plane"
	SubsamplingVert int
	Planar          bool
}

// registry is the static, immutable table keyed by tag. Built once in init.
var registry map[Tag]Descriptor

func init() {
	registry = map[Tag]Descriptor{
		Unknown: {Name: "Unknown"},
		RGB32: {
			Name: "RGB32", BitsPerSample: 8, BppNominator: 32, BppDenominator: 1,
		},
		RGB24: {
			Name: "RGB24", BitsPerSample: 8, BppNominator: 24, BppDenominator: 1,
		},
		BGR24: {
			Name: "BGR24", BitsPerSample: 8, BppNominator: 24, BppDenominator: 1,
		},
		YCbCr411_8p: {
			Name: "YCbCr411_8p", BitsPerSample: 8, BppNominator: 12, BppDenominator: 1,
			SubsamplingHorz: 4, SubsamplingVert: 1, Planar: true,
		},
		YCbCr420_8p: {
			Name: "YCbCr420_8p", BitsPerSample: 8, BppNominator: 12, BppDenominator: 1,
			SubsamplingHorz: 2, SubsamplingVert: 2, Planar: true,
		},
		YCbCr422_8p: {
			Name: "YCbCr422_8p", BitsPerSample: 8, BppNominator: 16, BppDenominator: 1,
			SubsamplingHorz: 2, SubsamplingVert: 1, Planar: true,
		},
		UYVY422_8: {
			Name: "UYVY422_8", BitsPerSample: 8, BppNominator: 16, BppDenominator: 1,
			SubsamplingHorz: 2, SubsamplingVert: 1,
		},
		YCbCr422_10_packed: {
			Name: "YCbCr422_10_packed", BitsPerSample: 10, BppNominator: 128, BppDenominator: 6,
			SubsamplingHorz: 2, SubsamplingVert: 1,
		},
		YCbCr444_8p: {
			Name: "YCbCr444_8p", BitsPerSample: 8, BppNominator: 24, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_12LE_p: {
			Name: "YCbCr444_12LE_p", BitsPerSample: 12, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_12BE_p: {
			Name: "YCbCr444_12BE_p", BitsPerSample: 12, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_16LE_p: {
			Name: "YCbCr444_16LE_p", BitsPerSample: 16, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_16BE_p: {
			Name: "YCbCr444_16BE_p", BitsPerSample: 16, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_12Native_p: {
			Name: "YCbCr444_12Native_p", BitsPerSample: 12, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_12Swapped_p: {
			Name: "YCbCr444_12Swapped_p", BitsPerSample: 12, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_16Native_p: {
			Name: "YCbCr444_16Native_p", BitsPerSample: 16, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr444_16Swapped_p: {
			Name: "YCbCr444_16Swapped_p", BitsPerSample: 16, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		Gray8: {
			Name: "Gray8", BitsPerSample: 8, BppNominator: 8, BppDenominator: 1,
			Planar: true,
		},
		GBR12in16LE_p: {
			Name: "GBR12in16LE_p", BitsPerSample: 12, BppNominator: 48, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		YCbCr420_10LE_p: {
			Name: "YCbCr420_10LE_p", BitsPerSample: 10, BppNominator: 24, BppDenominator: 1,
			SubsamplingHorz: 2, SubsamplingVert: 2, Planar: true,
		},
		YCrCb422_8p: {
			Name: "YCrCb422_8p", BitsPerSample: 8, BppNominator: 16, BppDenominator: 1,
			SubsamplingHorz: 2, SubsamplingVert: 1, Planar: true,
		},
		YCrCb444_8p: {
			Name: "YCrCb444_8p", BitsPerSample: 8, BppNominator: 24, BppDenominator: 1,
			SubsamplingHorz: 1, SubsamplingVert: 1, Planar: true,
		},
		UYVY422_YCbCr10_packed: {
			Name: "UYVY422_YCbCr10_packed", BitsPerSample: 10, BppNominator: 128, BppDenominator: 6,
			SubsamplingHorz: 2, SubsamplingVert: 1,
		},
	}
}

// ErrUnknownFormat is returned by operations that refuse to size or decode
// an Unknown (or otherwise unregistered) pixel format.
var ErrUnknownFormat = errors.New("format: unknown pixel format")

// Lookup returns the descriptor for tag, and false if tag is not registered.
func Lookup(tag Tag) (Descriptor, bool) {
	d, ok := registry[tag]
	return d, ok
}

// IsReversedChroma reports whether the plane order in memory is Y, Cr, Cb
// (as opposed to the default Y, Cb, Cr). The unpacker uses this to decide
// which source plane feeds the U output and which feeds V.
func IsReversedChroma(tag Tag) bool {
	switch tag {
	case YCrCb422_8p, YCrCb444_8p:
		return true
	default:
		return false
	}
}

// BitsPerSample returns the descriptor's bit depth, or 0 for an unknown tag.
func BitsPerSample(tag Tag) int {
	d, ok := registry[tag]
	if !ok {
		return 0
	}
	return d.BitsPerSample
}

// HorizontalSubsampling returns the chroma horizontal subsampling factor,
// or 0 for an unknown tag or a format with no chroma plane.
func HorizontalSubsampling(tag Tag) int {
	d, ok := registry[tag]
	if !ok {
		return 0
	}
	return d.SubsamplingHorz
}

// VerticalSubsampling returns the chroma vertical subsampling factor,
// or 0 for an unknown tag or a format with no chroma plane.
func VerticalSubsampling(tag Tag) int {
	d, ok := registry[tag]
	if !ok {
		return 0
	}
	return d.SubsamplingVert
}

// IsPlanar reports whether the format stores luma and chroma in separate
// contiguous planes (as opposed to interleaved/packed words).
func IsPlanar(tag Tag) bool {
	d, ok := registry[tag]
	if !ok {
		return false
	}
	return d.Planar
}

// BytesPerFrame computes the exact byte length of one raw frame of
// dimensions w x h in the given pixel format, per the rounding rules in
// the Frame (raw) data model: pixel counts not divisible by the format's
// bpp denominator round up (with a warning), and a resulting bit count not
// divisible by 8 rounds up to the next byte (with a warning).
//
// An unknown tag (or a zero denominator, which only Unknown carries)
// signals "cannot size this frame" by returning 0.
func BytesPerFrame(tag Tag, w, h int) int {
	d, ok := registry[tag]
	if !ok || d.BppDenominator == 0 || w <= 0 || h <= 0 {
		return 0
	}

	n := w * h
	var bits int
	if n%d.BppDenominator == 0 {
		bits = (n / d.BppDenominator) * d.BppNominator
	} else {
		bits = ((n / d.BppDenominator) + 1) * d.BppNominator
		ylog.Warnf("format: %s frame %dx%d: pixel count %d not divisible by bpp denominator %d, rounding up", d.Name, w, h, n, d.BppDenominator)
	}

	if bits%8 != 0 {
		ylog.Warnf("format: %s frame %dx%d: bit count %d not a multiple of 8, rounding up", d.Name, w, h, bits)
		bits += 8 - (bits % 8)
	}

	return bits / 8
}
