package decoder

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/sktmfaker/yuvframe/cache"
	"github.com/sktmfaker/yuvframe/convert"
	"github.com/sktmfaker/yuvframe/format"
	"github.com/sktmfaker/yuvframe/yuv"
)

func writeGray8(t *testing.T, w, h int, fill byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.gray")
	buf := make([]byte, w*h)
	for i := range buf {
		buf[i] = fill
	}
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetOneFrameDecodesAndCaches(t *testing.T) {
	path := writeGray8(t, 2, 2, 126)

	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	rgb, err := d.GetOneFrame(0, 2, 2, format.Gray8)
	if err != nil {
		t.Fatalf("GetOneFrame: %v", err)
	}
	if len(rgb) != 12 {
		t.Fatalf("len(rgb) = %d, want 12", len(rgb))
	}
	for i, c := range rgb {
		if c != 128 {
			t.Errorf("byte %d = %d, want 128", i, c)
		}
	}

	rgb2, err := d.GetOneFrame(0, 2, 2, format.Gray8)
	if err != nil {
		t.Fatalf("GetOneFrame (second call): %v", err)
	}
	if &rgb[0] != &rgb2[0] {
		t.Error("expected second call to return the cached slice")
	}
}

func TestGetOneFrameUnknownFormatErrors(t *testing.T) {
	path := writeGray8(t, 2, 2, 0)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := d.GetOneFrame(0, 2, 2, format.Unknown); err == nil {
		t.Fatal("expected error for format.Unknown")
	}
}

func TestSetInterpolationModeAndColorConversionApply(t *testing.T) {
	path := writeGray8(t, 2, 2, 200)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	d.SetInterpolationMode(yuv.Interstitial)
	d.SetColorConversion(convert.BT709)

	if _, err := d.GetOneFrame(0, 2, 2, format.Gray8); err != nil {
		t.Fatalf("GetOneFrame: %v", err)
	}
}

func TestClearCacheForcesRedecode(t *testing.T) {
	path := writeGray8(t, 2, 2, 50)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	rgb1, err := d.GetOneFrame(0, 2, 2, format.Gray8)
	if err != nil {
		t.Fatalf("GetOneFrame: %v", err)
	}
	d.ClearCache()
	rgb2, err := d.GetOneFrame(0, 2, 2, format.Gray8)
	if err != nil {
		t.Fatalf("GetOneFrame: %v", err)
	}
	if &rgb1[0] == &rgb2[0] {
		t.Error("expected a fresh decode after ClearCache")
	}
}

func TestPrefetchStopsOnCancel(t *testing.T) {
	path := writeGray8(t, 2, 2, 10)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	calls := 0
	cancel := func() bool {
		calls++
		return calls > 1
	}
	d.Prefetch(0, 5, 2, 2, format.Gray8, cancel)
	if calls != 2 {
		t.Errorf("cancel called %d times, want 2", calls)
	}
}

// writeYUV420_10LE writes a raw planar 4:2:0 10-bit-little-endian frame
// (little-endian 16-bit words holding the true 10-bit value in their low
// bits, per yuv.unpack420_10LE) with every Y, U, and V sample set to the
// given true (unjustified) value.
func writeYUV420_10LE(t *testing.T, w, h int, yVal, cVal uint16) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.yuv10")

	n := w * h
	wc, hc := w/2, h/2
	cl := wc * hc

	buf := make([]byte, 2*n+4*cl)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:2*i+2], yVal)
	}
	uOff := 2 * n
	vOff := uOff + 2*cl
	for i := 0; i < cl; i++ {
		binary.LittleEndian.PutUint16(buf[uOff+2*i:uOff+2*i+2], cVal)
		binary.LittleEndian.PutUint16(buf[vOff+2*i:vOff+2*i+2], cVal)
	}

	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestGetOneFrameHighBitDepthWhite exercises the >8-bit path end to end
// (file -> format.BitsPerSample -> yuv unpack -> convert.ToRGB24): a true
// 10-bit saturating luma sample with neutral chroma must decode to full
// white, the same value convert.TestHighBitDepthClampsToRGBMax checks at
// the converter layer. This catches wiring bugs where the decoder passes
// the wrong bit depth (e.g. Frame444's 16-bit container width) into the
// converter instead of format.BitsPerSample(tag).
func TestGetOneFrameHighBitDepthWhite(t *testing.T) {
	path := writeYUV420_10LE(t, 2, 2, 1023, 512)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	rgb, err := d.GetOneFrame(0, 2, 2, format.YCbCr420_10LE_p)
	if err != nil {
		t.Fatalf("GetOneFrame: %v", err)
	}
	if len(rgb) != 12 {
		t.Fatalf("len(rgb) = %d, want 12", len(rgb))
	}
	for i := 0; i < 4; i++ {
		got := [3]byte{rgb[3*i], rgb[3*i+1], rgb[3*i+2]}
		want := [3]byte{255, 255, 255}
		if got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

// TestGetOneFrameHighBitDepthBlack mirrors
// TestGetOneFrameHighBitDepthWhite at the converter's zero point (true Y ==
// y_offset), which must decode to exact black.
func TestGetOneFrameHighBitDepthBlack(t *testing.T) {
	path := writeYUV420_10LE(t, 2, 2, 64, 512)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	rgb, err := d.GetOneFrame(0, 2, 2, format.YCbCr420_10LE_p)
	if err != nil {
		t.Fatalf("GetOneFrame: %v", err)
	}
	for i := 0; i < 4; i++ {
		got := [3]byte{rgb[3*i], rgb[3*i+1], rgb[3*i+2]}
		want := [3]byte{0, 0, 0}
		if got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
}

func TestFileMetadata(t *testing.T) {
	path := writeGray8(t, 2, 2, 0)
	d, err := OpenFile(path, cache.New(cache.DefaultBudgetMB))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if d.FileSize() != 4 {
		t.Errorf("FileSize() = %d, want 4", d.FileSize())
	}
	if d.FileName() != filepath.Base(path) {
		t.Errorf("FileName() = %q, want %q", d.FileName(), filepath.Base(path))
	}
	if _, err := d.CreatedTime(); err != nil {
		t.Errorf("CreatedTime: %v", err)
	}
	if _, err := d.ModifiedTime(); err != nil {
		t.Errorf("ModifiedTime: %v", err)
	}
}
