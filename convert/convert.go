// Package convert implements the YUV→RGB Converter (to_rgb24): fixed-point
// BT.601/BT.709 matrixing over a planar 4:4:4 buffer, with saturating
// arithmetic at 8-bit and higher sample depths.
//
// The fixed-point style (named Q16/Q24 multiplier constants, a precomputed
// saturation table indexed with a fixed bias) follows the same shape as the
// teacher's internal/dsp/yuv.go BT.601 tables, generalized here to the two
// standard matrices and to depths above 8 bits.
package convert

import "github.com/pkg/errors"

// Matrix selects the YUV->RGB color matrix.
type Matrix int

const (
	// BT601 is the SDTV matrix (the package default).
	BT601 Matrix = iota
	// BT709 is the HDTV matrix.
	BT709
)

type coeffs struct {
	yMult, rvMult, guMult, gvMult, buMult int64
}

// base8 holds the Q16 coefficients for the 8-bit path.
var base8 = map[Matrix]coeffs{
	BT601: {yMult: 76309, rvMult: 104597, guMult: -25675, gvMult: -53279, buMult: 132201},
	BT709: {yMult: 76309, rvMult: 117489, guMult: -13975, gvMult: -34925, buMult: 138438},
}

// base16 holds the Q24 coefficients assumed for 16-bit samples; the
// high-bit-depth path rescales these down for 10/12-bit sources.
var base16 = map[Matrix]coeffs{
	BT601: {yMult: 19535114, rvMult: 26776886, guMult: -6572681, gvMult: -13639334, buMult: 33843539},
	BT709: {yMult: 19535114, rvMult: 30077204, guMult: -3577718, gvMult: -8940735, buMult: 35440221},
}

// rescale narrows a base16 (Q24) coefficient down to the precision implied
// by bps, per the spec's `c <- (c + (1<<(15-bps))) >> (16-bps)` rule.
func rescale(c int64, bps int) int64 {
	return (c + (1 << (15 - bps))) >> (16 - bps)
}

func coefficientsFor(m Matrix, bps int) coeffs {
	if bps == 8 {
		return base8[m]
	}
	c := base16[m]
	if bps == 16 {
		return c
	}
	return coeffs{
		yMult:  rescale(c.yMult, bps),
		rvMult: rescale(c.rvMult, bps),
		guMult: rescale(c.guMult, bps),
		gvMult: rescale(c.gvMult, bps),
		buMult: rescale(c.buMult, bps),
	}
}

// ErrUnsupportedBitDepth is returned for sample depths outside {8,10,12,16}.
var ErrUnsupportedBitDepth = errors.New("convert: unsupported bit depth")

func validBitDepth(bps int) bool {
	switch bps {
	case 8, 10, 12, 16:
		return true
	default:
		return false
	}
}

// ToRGB24 converts a planar 4:4:4 YUV buffer (y, u, v: w*h samples each, at
// bps bits per sample, 8-bit samples as one byte, >8-bit samples as a
// host-native uint16 left-justified into the top bits) to interleaved RGB24
// using matrix m, writing into dst (resized as needed). It returns dst.
// >8-bit samples are right-shifted back down to their true bps-bit range
// before matrixing, undoing Frame444's left-justification.
func ToRGB24(dst []byte, y, u, v []byte, w, h, bps int, m Matrix) ([]byte, error) {
	if !validBitDepth(bps) {
		return dst, errors.Wrapf(ErrUnsupportedBitDepth, "%d bits", bps)
	}

	need := 3 * w * h
	if cap(dst) < need {
		dst = make([]byte, need)
	} else {
		dst = dst[:need]
	}

	c := coefficientsFor(m, bps)
	n := w * h

	if bps == 8 {
		yOffset := int64(16)
		cZero := int64(128)
		for i := 0; i < n; i++ {
			yp := int64(y[i])
			up := int64(u[i])
			vp := int64(v[i])
			r, g, b := convert8(yp, up, vp, yOffset, cZero, c)
			dst[3*i] = clip8Table(r)
			dst[3*i+1] = clip8Table(g)
			dst[3*i+2] = clip8Table(b)
		}
		return dst, nil
	}

	yOffset := int64(16) << (bps - 8)
	cZero := int64(128) << (bps - 8)
	rgbMax := int64(1)<<uint(bps) - 1
	shift := uint(8 + bps)
	unjustify := uint(16 - bps)
	for i := 0; i < n; i++ {
		yp := int64(get16Sample(y, i)) >> unjustify
		up := int64(get16Sample(u, i)) >> unjustify
		vp := int64(get16Sample(v, i)) >> unjustify

		yPrime := (yp - yOffset) * c.yMult
		uPrime := up - cZero
		vPrime := vp - cZero

		r := clampInt64((yPrime+vPrime*c.rvMult)>>shift, rgbMax) >> uint(bps-8)
		g := clampInt64((yPrime+uPrime*c.guMult+vPrime*c.gvMult)>>shift, rgbMax) >> uint(bps-8)
		b := clampInt64((yPrime+uPrime*c.buMult)>>shift, rgbMax) >> uint(bps-8)

		dst[3*i] = byte(r)
		dst[3*i+1] = byte(g)
		dst[3*i+2] = byte(b)
	}
	return dst, nil
}

func convert8(yp, up, vp, yOffset, cZero int64, c coeffs) (r, g, b int64) {
	yPrime := (yp - yOffset) * c.yMult
	uPrime := up - cZero
	vPrime := vp - cZero
	r = (yPrime + vPrime*c.rvMult) >> 16
	g = (yPrime + uPrime*c.guMult + vPrime*c.gvMult) >> 16
	b = (yPrime + uPrime*c.buMult) >> 16
	return
}

func clampInt64(v, max int64) int64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
