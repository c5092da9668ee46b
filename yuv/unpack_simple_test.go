package yuv

import (
	"testing"

	"github.com/sktmfaker/yuvframe/format"
)

func TestPlanarNearestNoSubsampling(t *testing.T) {
	y := []byte{1, 2, 3, 4}
	u := []byte{10, 20, 30, 40}
	v := []byte{50, 60, 70, 80}
	raw := append(append(append([]byte{}, y...), u...), v...)

	var f Frame444
	if err := ToYUV444(&f, raw, format.YCbCr444_8p, 2, 2, BiLinear); err != nil {
		t.Fatalf("ToYUV444: %v", err)
	}
	if string(f.Y()) != string(y) {
		t.Errorf("Y = %v, want %v", f.Y(), y)
	}
	if string(f.U()) != string(u) {
		t.Errorf("U = %v, want %v", f.U(), u)
	}
	if string(f.V()) != string(v) {
		t.Errorf("V = %v, want %v", f.V(), v)
	}
}

func TestPlanarNearestReversedChroma(t *testing.T) {
	// YCrCb422_8p: plane order in the raw buffer is Y, Cr, Cb. Use a 4x1
	// frame so the chroma plane is 2x1 for horizontal-only 4:2:2.
	yData := []byte{1, 2, 3, 4}
	crData := []byte{9, 11}
	cbData := []byte{5, 6}
	raw := append(append(append([]byte{}, yData...), crData...), cbData...)

	var f Frame444
	if err := ToYUV444(&f, raw, format.YCrCb422_8p, 4, 1, BiLinear); err != nil {
		t.Fatalf("ToYUV444: %v", err)
	}
	// Reversed order means the first chroma plane in the raw buffer (Cr)
	// feeds V, and the second (Cb) feeds U.
	wantU := []byte{5, 5, 6, 6}
	wantV := []byte{9, 9, 11, 11}
	if string(f.U()) != string(wantU) {
		t.Errorf("U = %v, want %v", f.U(), wantU)
	}
	if string(f.V()) != string(wantV) {
		t.Errorf("V = %v, want %v", f.V(), wantV)
	}
}
