package yuv

// unpack420_10LE unpacks planar 4:2:0 10-bit little-endian samples (each
// sample a 16-bit LE word holding the 10-bit value in its low bits) into
// 4:4:4 at 16-bit sample width, left-justifying each value and upsampling
// chroma by nearest-neighbor sample-and-hold. Unlike YCbCr420_8p, no
// interpolated positioning is defined for the 10-bit source: the format
// only ever needs plain replication here.
func unpack420_10LE(dst *Frame444, raw []byte, w, h int) error {
	const bits = 10
	wc, hc := w/2, h/2

	n := w * h
	cl := wc * hc

	ySrc := raw[0 : 2*n]
	uSrc := raw[2*n : 2*n+2*cl]
	vSrc := raw[2*n+2*cl : 2*n+4*cl]

	y := dst.Y()
	for i := 0; i < n; i++ {
		put16(y, i, leftJustify(readSample(ySrc, i, orderLE), bits))
	}

	u, v := dst.U(), dst.V()
	for yy := 0; yy < h; yy++ {
		sy := yy / 2
		for xx := 0; xx < w; xx++ {
			sx := xx / 2
			si := sy*wc + sx
			di := yy*w + xx
			put16(u, di, leftJustify(readSample(uSrc, si, orderLE), bits))
			put16(v, di, leftJustify(readSample(vSrc, si, orderLE), bits))
		}
	}
	return nil
}
