package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBytesPerFrame(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		w, h int
		want int
	}{
		{"420 1080p", YCbCr420_8p, 1920, 1080, 3_110_400},
		{"422_10_packed 1080p", YCbCr422_10_packed, 1920, 1080, 5_529_600},
		{"v210-like BE 1080p", UYVY422_YCbCr10_packed, 1920, 1080, 5_529_600},
		{"444_8p small", YCbCr444_8p, 4, 4, 48},
		{"gray8", Gray8, 4, 4, 16},
		{"unknown", Unknown, 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesPerFrame(tt.tag, tt.w, tt.h); got != tt.want {
				t.Errorf("BytesPerFrame(%v, %d, %d) = %d, want %d", tt.tag, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestUnknownTagQueries(t *testing.T) {
	if BitsPerSample(Unknown) != 0 {
		t.Error("BitsPerSample(Unknown) should be 0")
	}
	if HorizontalSubsampling(Unknown) != 0 {
		t.Error("HorizontalSubsampling(Unknown) should be 0")
	}
	if VerticalSubsampling(Unknown) != 0 {
		t.Error("VerticalSubsampling(Unknown) should be 0")
	}
	if IsPlanar(Unknown) {
		t.Error("IsPlanar(Unknown) should be false")
	}
	if BytesPerFrame(Unknown, 640, 480) != 0 {
		t.Error("BytesPerFrame(Unknown, ...) should be 0")
	}
}

func TestReversedChroma(t *testing.T) {
	cases := map[Tag]bool{
		YCrCb422_8p:  true,
		YCrCb444_8p:  true,
		YCbCr422_8p:  false,
		YCbCr444_8p:  false,
	}
	for tag, want := range cases {
		if got := IsReversedChroma(tag); got != want {
			t.Errorf("IsReversedChroma(%v) = %v, want %v", tag, got, want)
		}
	}
}

func TestLookupDescriptor(t *testing.T) {
	got, ok := Lookup(YCbCr420_8p)
	if !ok {
		t.Fatal("Lookup(YCbCr420_8p) not found")
	}
	want := Descriptor{
		Name:            "YCbCr420_8p",
		BitsPerSample:   8,
		BppNominator:    12,
		BppDenominator:  1,
		SubsamplingHorz: 2,
		SubsamplingVert: 2,
		Planar:          true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lookup(YCbCr420_8p) mismatch (-want +got):\n%s", diff)
	}
}

// TestBppInvariant checks bytes_per_frame*8 >= w*h*(num/den) for every
// registered format, with padding of at most 7 bits plus one BppNominator
// group (the round-up of a pixel count not divisible by the bpp denominator).
func TestBppInvariant(t *testing.T) {
	w, h := 16, 16
	for tag := RGB32; tag <= UYVY422_YCbCr10_packed; tag++ {
		d, ok := Lookup(tag)
		if !ok || d.BppDenominator == 0 {
			continue
		}
		bytes := BytesPerFrame(tag, w, h)
		bits := bytes * 8
		nominal := (w * h * d.BppNominator) / d.BppDenominator
		if bits < nominal {
			t.Errorf("%s: bytes_per_frame*8 (%d) < nominal bits (%d)", d.Name, bits, nominal)
		}
		if bits-nominal > 7+d.BppNominator {
			t.Errorf("%s: padding %d exceeds expected bound", d.Name, bits-nominal)
		}
	}
}
