// Package decoder ties the format registry, file reader, unpacker,
// converter, and cache together into the public decode pipeline: given a
// frame index and pixel format, it returns a cached RGB24 frame, decoding
// on a cache miss.
package decoder

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/sktmfaker/yuvframe/cache"
	"github.com/sktmfaker/yuvframe/convert"
	"github.com/sktmfaker/yuvframe/file"
	"github.com/sktmfaker/yuvframe/format"
	"github.com/sktmfaker/yuvframe/internal/ylog"
	"github.com/sktmfaker/yuvframe/yuv"
)

// Decoder wraps one open raw video file with the shared frame cache and the
// unpack/convert pipeline. A Decoder is safe for concurrent use: the
// underlying file.Handle serializes its own reads, and the cache serializes
// and coalesces its own inserts/lookups.
type Decoder struct {
	handle *file.Handle
	cache  *cache.Cache

	mu   sync.Mutex // guards mode, matrix, rawBuf, yuvBuf, frameSizes
	mode yuv.InterpMode
	matrix convert.Matrix

	rawBuf []byte
	yuvBuf yuv.Frame444

	frameSizes map[frameSizeKey]int
}

type frameSizeKey struct {
	tag  format.Tag
	w, h int
}

// New constructs a Decoder over an already-open file handle, sharing c for
// cached frames across all decoders (c is typically process-wide).
func New(handle *file.Handle, c *cache.Cache) *Decoder {
	return &Decoder{
		handle:     handle,
		cache:      c,
		mode:       yuv.BiLinear,
		matrix:     convert.BT601,
		frameSizes: make(map[frameSizeKey]int),
	}
}

// OpenFile opens path and constructs a Decoder sharing c.
func OpenFile(path string, c *cache.Cache) (*Decoder, error) {
	h, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	return New(h, c), nil
}

// SetInterpolationMode selects the chroma upsampling positioning used for
// subsequent decodes.
func (d *Decoder) SetInterpolationMode(mode yuv.InterpMode) {
	d.mu.Lock()
	d.mode = mode
	d.mu.Unlock()
}

// SetColorConversion selects the YUV->RGB matrix used for subsequent
// decodes.
func (d *Decoder) SetColorConversion(m convert.Matrix) {
	d.mu.Lock()
	d.matrix = m
	d.mu.Unlock()
}

// ClearCache empties the shared frame cache.
func (d *Decoder) ClearCache() { d.cache.Clear() }

// FileSize returns the underlying file's size in bytes.
func (d *Decoder) FileSize() int64 { return d.handle.FileSize() }

// FileName returns the underlying file's base name.
func (d *Decoder) FileName() string { return d.handle.Name() }

// CreatedTime returns the underlying file's creation time.
func (d *Decoder) CreatedTime() (string, error) { return d.handle.CreatedTime() }

// ModifiedTime returns the underlying file's modification time.
func (d *Decoder) ModifiedTime() (string, error) { return d.handle.ModifiedTime() }

// frameSize memoizes format.BytesPerFrame per (tag, w, h): the decode loop
// calls it once per frame, and the format's bpp math is pure but not free,
// so a video's fixed geometry is costed only once per distinct combination.
func (d *Decoder) frameSize(tag format.Tag, w, h int) int {
	key := frameSizeKey{tag, w, h}

	d.mu.Lock()
	defer d.mu.Unlock()
	if n, ok := d.frameSizes[key]; ok {
		return n
	}
	n := format.BytesPerFrame(tag, w, h)
	d.frameSizes[key] = n
	return n
}

// GetOneFrame returns the RGB24 bytes for frame index idx at size w x h in
// source pixel format tag, decoding and caching on a miss. The returned
// slice is owned by the cache; callers must not mutate it.
func (d *Decoder) GetOneFrame(idx int, w, h int, tag format.Tag) ([]byte, error) {
	frameSize := d.frameSize(tag, w, h)
	if frameSize == 0 {
		return nil, errors.Wrapf(format.ErrUnknownFormat, "cannot size frame for tag %v", tag)
	}

	key := cache.Key{Path: d.handle.Path(), Index: idx}
	rgbBytes := format.BytesPerFrame(format.RGB24, w, h)
	costMB := rgbBytes >> 20

	return d.cache.GetOrDecode(key, costMB, func() ([]byte, error) {
		return d.decode(idx, w, h, tag)
	})
}

func (d *Decoder) decode(idx, w, h int, tag format.Tag) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, _, err := d.handle.ReadFrames(d.rawBuf, idx, 1, w, h, tag)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding frame %d", idx)
	}
	d.rawBuf = raw

	if err := yuv.ToYUV444(&d.yuvBuf, raw, tag, w, h, d.mode); err != nil {
		return nil, errors.Wrapf(err, "unpacking frame %d", idx)
	}

	bps := format.BitsPerSample(tag)
	rgb, err := convert.ToRGB24(nil, d.yuvBuf.Y(), d.yuvBuf.U(), d.yuvBuf.V(), w, h, bps, d.matrix)
	if err != nil {
		return nil, errors.Wrapf(err, "converting frame %d", idx)
	}
	return rgb, nil
}

// Prefetch decodes and caches frames [first, first+count) in the
// background, checking cancel between frames so a caller can abort within
// one frame of requesting it. Errors for individual frames are logged and
// do not stop the prefetch; the cache simply ends up missing that entry.
func (d *Decoder) Prefetch(first, count, w, h int, tag format.Tag, cancel func() bool) {
	for i := 0; i < count; i++ {
		if cancel != nil && cancel() {
			return
		}
		if _, err := d.GetOneFrame(first+i, w, h, tag); err != nil {
			ylog.Warnf("decoder: prefetch frame %d: %v", first+i, err)
		}
	}
}
