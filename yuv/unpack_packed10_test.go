package yuv

import (
	"encoding/binary"
	"testing"

	"github.com/sktmfaker/yuvframe/format"
)

func TestUnpackPacked10BigEndian(t *testing.T) {
	// One group of 6 pixels: Y = 100, 200, ..., 600 (10-bit values), constant
	// chroma 512 throughout, packed big-endian.
	ys := [6]uint32{100, 200, 300, 400, 500, 600}
	const chroma = 512

	w0 := (chroma << 20) | (ys[0] << 10) | chroma
	w1 := ys[1] | (chroma << 10) | (ys[2] << 20)
	w2 := chroma | (ys[3] << 10) | (chroma << 20)
	w3 := ys[4] | (chroma << 10) | (ys[5] << 20)

	raw := make([]byte, 16)
	binary.BigEndian.PutUint32(raw[0:4], w0)
	binary.BigEndian.PutUint32(raw[4:8], w1)
	binary.BigEndian.PutUint32(raw[8:12], w2)
	binary.BigEndian.PutUint32(raw[12:16], w3)

	var f Frame444
	if err := ToYUV444(&f, raw, format.UYVY422_YCbCr10_packed, 6, 1, BiLinear); err != nil {
		t.Fatalf("ToYUV444: %v", err)
	}

	y := f.Y()
	for i, want := range ys {
		got := get16(y, i) >> 6 // undo the left-justify to compare raw 10-bit values
		if uint32(got) != want {
			t.Errorf("Y[%d] = %d, want %d", i, got, want)
		}
	}
	u, v := f.U(), f.V()
	for i := 0; i < 6; i++ {
		if got := get16(u, i) >> 6; uint32(got) != chroma {
			t.Errorf("U[%d] = %d, want %d", i, got, chroma)
		}
		if got := get16(v, i) >> 6; uint32(got) != chroma {
			t.Errorf("V[%d] = %d, want %d", i, got, chroma)
		}
	}
}
