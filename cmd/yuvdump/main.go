// Command yuvdump decodes one frame of a raw YUV video file to PNG.
//
// Usage:
//
//	yuvdump [options] <input.yuv> <output.png>
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sktmfaker/yuvframe/cache"
	"github.com/sktmfaker/yuvframe/convert"
	"github.com/sktmfaker/yuvframe/decoder"
	"github.com/sktmfaker/yuvframe/format"
	"github.com/sktmfaker/yuvframe/internal/ylog"
	"github.com/sktmfaker/yuvframe/yuv"
)

var formatNames = map[string]format.Tag{
	"gray8":           format.Gray8,
	"yuv420p":         format.YCbCr420_8p,
	"yuv422p":         format.YCbCr422_8p,
	"yuv444p":         format.YCbCr444_8p,
	"yuv411p":         format.YCbCr411_8p,
	"uyvy422":         format.UYVY422_8,
	"yuv420p10le":     format.YCbCr420_10LE_p,
	"yuv422p10":       format.YCbCr422_10_packed,
	"uyvy422_yuv10":   format.UYVY422_YCbCr10_packed,
	"yuv444p12le":     format.YCbCr444_12LE_p,
	"yuv444p12be":     format.YCbCr444_12BE_p,
	"yuv444p16le":     format.YCbCr444_16LE_p,
	"yuv444p16be":     format.YCbCr444_16BE_p,
	"ycrcb422p":       format.YCrCb422_8p,
	"ycrcb444p":       format.YCrCb444_8p,
	"gbr12in16le":     format.GBR12in16LE_p,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "yuvdump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("yuvdump", flag.ExitOnError)
	width := fs.Int("w", 0, "frame width in pixels (required)")
	height := fs.Int("h", 0, "frame height in pixels (required)")
	pixFmt := fs.String("pix_fmt", "yuv420p", "source pixel format, see -list_formats")
	frame := fs.Int("frame", 0, "zero-based frame index to decode")
	interp := fs.String("interp", "bilinear", "chroma interpolation: bilinear|interstitial")
	matrix := fs.String("matrix", "bt601", "color matrix: bt601|bt709")
	logFile := fs.String("log", "", "rotate warnings to this file instead of stderr")
	listFormats := fs.Bool("list_formats", false, "print supported -pix_fmt values and exit")
	fs.Parse(args)

	if *listFormats {
		for name := range formatNames {
			fmt.Println(name)
		}
		return nil
	}

	if *logFile != "" {
		ylog.SetOutput(*logFile)
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected <input.yuv> <output.png>")
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("-w and -h are required and must be positive")
	}

	tag, ok := formatNames[*pixFmt]
	if !ok {
		return fmt.Errorf("unknown -pix_fmt %q (use -list_formats)", *pixFmt)
	}

	mode, err := parseInterp(*interp)
	if err != nil {
		return err
	}
	m, err := parseMatrix(*matrix)
	if err != nil {
		return err
	}

	d, err := decoder.OpenFile(fs.Arg(0), cache.New(cache.DefaultBudgetMB))
	if err != nil {
		return err
	}
	d.SetInterpolationMode(mode)
	d.SetColorConversion(m)

	rgb, err := d.GetOneFrame(*frame, *width, *height, tag)
	if err != nil {
		return err
	}

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, newRGB24Image(rgb, *width, *height))
}

func parseInterp(s string) (yuv.InterpMode, error) {
	switch s {
	case "bilinear":
		return yuv.BiLinear, nil
	case "interstitial":
		return yuv.Interstitial, nil
	default:
		return 0, fmt.Errorf("unknown -interp %q", s)
	}
}

func parseMatrix(s string) (convert.Matrix, error) {
	switch s {
	case "bt601":
		return convert.BT601, nil
	case "bt709":
		return convert.BT709, nil
	default:
		return 0, fmt.Errorf("unknown -matrix %q", s)
	}
}

// rgb24Image wraps a tightly packed RGB24 buffer as an image.Image without
// copying: image.NRGBA needs a 4-byte stride, so this reads the 3-byte
// pixels directly instead of converting into one of the stdlib's formats.
type rgb24Image struct {
	pix           []byte
	width, height int
}

func newRGB24Image(pix []byte, w, h int) *rgb24Image {
	return &rgb24Image{pix: pix, width: w, height: h}
}

func (img *rgb24Image) ColorModel() color.Model { return color.RGBAModel }

func (img *rgb24Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

func (img *rgb24Image) At(x, y int) color.Color {
	i := (y*img.width + x) * 3
	return color.RGBA{R: img.pix[i], G: img.pix[i+1], B: img.pix[i+2], A: 255}
}
