package yuv

import "github.com/sktmfaker/yuvframe/format"

// unpackGray8 places raw directly as the Y plane and fills U/V with the
// neutral chroma value (no color information in a grayscale source).
func unpackGray8(dst *Frame444, raw []byte, w, h int) error {
	n := w * h
	copy(dst.Y(), raw[:n])
	u, v := dst.U(), dst.V()
	for i := 0; i < n; i++ {
		u[i] = 128
		v[i] = 128
	}
	return nil
}

// unpackUYVY422 unpacks interleaved 8-bit 4:2:2 (U0 Y0 V0 Y1 U2 Y2 V2 Y3 ...)
// into planar 4:4:4, replicating each chroma sample across its pixel pair.
func unpackUYVY422(dst *Frame444, raw []byte, w, h int) error {
	y, u, v := dst.Y(), dst.U(), dst.V()
	for row := 0; row < h; row++ {
		rowBase := row * w
		for x := 0; x < w; x++ {
			idx := 2 * (x + rowBase)
			y[rowBase+x] = raw[idx+1]
			pairBase := 2 * (((x >> 1) << 1) + rowBase)
			u[rowBase+x] = raw[pairBase]
			v[rowBase+x] = raw[pairBase+2]
		}
	}
	return nil
}

// unpackPlanarNearest unpacks any planar 8-bit format (4:1:1, 4:2:2, 4:4:4,
// and their YCrCb plane-order variants) via nearest-neighbor sample-and-hold
// chroma replication: source subsampling is always a power of two, so
// dividing the output coordinate by the subsampling factor picks the
// correct source chroma sample.
func unpackPlanarNearest(dst *Frame444, raw []byte, w, h int, d format.Descriptor, reversed bool) error {
	n := w * h
	copy(dst.Y(), raw[:n])

	hss, vss := d.SubsamplingHorz, d.SubsamplingVert
	if hss == 0 {
		hss = 1
	}
	if vss == 0 {
		vss = 1
	}
	wc, hc := w/hss, h/vss
	cl := wc * hc

	firstPlane := raw[n : n+cl]
	secondPlane := raw[n+cl : n+2*cl]
	uSrc, vSrc := firstPlane, secondPlane
	if reversed {
		uSrc, vSrc = secondPlane, firstPlane
	}

	u, v := dst.U(), dst.V()
	for y := 0; y < h; y++ {
		sy := y / vss
		for x := 0; x < w; x++ {
			sx := x / hss
			si := sy*wc + sx
			di := y*w + x
			u[di] = uSrc[si]
			v[di] = vSrc[si]
		}
	}
	return nil
}
