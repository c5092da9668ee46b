// Package file implements random-access raw video frame extraction from a
// flat, header-less file: given a frame index, width, height, and pixel
// format, it computes the frame's byte size and reads exactly those bytes.
package file

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sktmfaker/yuvframe/format"
	"github.com/sktmfaker/yuvframe/internal/ylog"
)

const timeLayout = "2006-01-02 15:04:05"

// ErrIO wraps a failure to open or read the underlying file.
var ErrIO = errors.New("file: io error")

// Handle is one open raw video file. A Handle serializes its own seeks and
// reads behind a mutex, so a single Handle may be shared by multiple
// goroutines (e.g. a foreground decode and a background prefetcher),
// though callers wanting true concurrency should open separate Handles.
type Handle struct {
	mu   sync.Mutex
	f    *os.File
	path string
	size int64
}

// Open opens path for random-access reading. It fails with ErrIO if the
// path does not exist or is not readable.
func Open(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "opening %q: %v", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "stat %q: %v", path, err)
	}
	return &Handle{f: f, path: path, size: info.Size()}, nil
}

// Close releases the underlying OS file descriptor.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.f.Close()
}

// Path returns the path the handle was opened with.
func (h *Handle) Path() string { return h.path }

// Name returns the base file name (no directory component).
func (h *Handle) Name() string {
	return filepath.Base(h.path)
}

// FileSize returns the file size in bytes, as recorded when the handle
// was opened.
func (h *Handle) FileSize() int64 { return h.size }

// ReadFrames seeks to first*bytes_per_frame(w,h,fmt) and reads
// count*bytes_per_frame(...) bytes into dst, growing dst if it is too
// small. It returns the number of bytes actually read. A short read (end
// of file) is not an error: the caller detects truncation by comparing the
// returned count against the requested length.
func (h *Handle) ReadFrames(dst []byte, first, count int, w, h2 int, tag format.Tag) ([]byte, int, error) {
	frameSize := format.BytesPerFrame(tag, w, h2)
	if frameSize == 0 {
		return dst, 0, errors.Wrap(format.ErrUnknownFormat, "file: cannot size frame")
	}

	want := frameSize * count
	if cap(dst) < want {
		dst = make([]byte, want)
	} else {
		dst = dst[:want]
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	off := int64(first) * int64(frameSize)
	n, err := h.f.ReadAt(dst, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return dst[:n], n, errors.Wrapf(ErrIO, "reading %q at offset %d: %v", h.path, off, err)
	}
	if n < want {
		ylog.Warnf("file: %s: short read at frame %d (got %d of %d bytes)", h.path, first, n, want)
	}
	return dst[:n], n, nil
}

// CreatedTime returns the file's creation time formatted as
// "YYYY-MM-DD HH:MM:SS". On platforms where creation time is unavailable,
// this falls back to the modification time.
func (h *Handle) CreatedTime() (string, error) {
	info, err := h.f.Stat()
	if err != nil {
		return "", errors.Wrap(ErrIO, err.Error())
	}
	return statCreatedTime(info).Format(timeLayout), nil
}

// statCreatedTime returns the best available creation time for info. Go's
// os.FileInfo does not expose a portable creation/birth time (it requires
// platform-specific syscalls, e.g. syscall.Stat_t.Birthtimespec on BSD/
// Darwin, which is unavailable on Linux at all); in keeping with the
// original desktop player's best-effort reporting, this falls back to the
// modification time everywhere.
func statCreatedTime(info os.FileInfo) time.Time {
	return info.ModTime()
}

// ModifiedTime returns the file's last-modification time formatted as
// "YYYY-MM-DD HH:MM:SS".
func (h *Handle) ModifiedTime() (string, error) {
	info, err := h.f.Stat()
	if err != nil {
		return "", errors.Wrap(ErrIO, err.Error())
	}
	return info.ModTime().Format(timeLayout), nil
}
