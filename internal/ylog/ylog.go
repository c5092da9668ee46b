// Package ylog provides the module-wide warning logger.
//
// Non-fatal conditions (pixel-count rounding, truncated reads, failed
// prefetch frames) are logged here rather than surfaced as errors: the core
// never aborts the process over them. Output is routed through a
// lumberjack.Logger so a long-running host (e.g. a prefetch daemon) does
// not grow its log file without bound, mirroring the rotation settings
// used by the ausocean-av command-line tools.
package ylog

import (
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation policy, matching the scale used by ausocean-av's
// netsender client (500MB/10 backups/28 days) scaled down for a library
// whose warnings are expected to be rare.
const (
	defaultMaxSizeMB = 50
	defaultMaxBackup = 5
	defaultMaxAgeDay = 28
)

var warn = log.New(os.Stderr, "yuvframe: ", log.LstdFlags)

// SetOutput redirects warning output to a rotating log file at path. Passing
// an empty path restores the default (stderr) writer. Safe to call before
// any decode to direct warnings away from the console in long-running
// processes (e.g. the background prefetcher).
func SetOutput(path string) {
	if path == "" {
		warn = log.New(os.Stderr, "yuvframe: ", log.LstdFlags)
		return
	}
	warn = log.New(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxSizeMB,
		MaxBackups: defaultMaxBackup,
		MaxAge:     defaultMaxAgeDay,
		Compress:   true,
	}, "yuvframe: ", log.LstdFlags)
}

// Warnf logs a non-fatal warning. It never returns an error and never
// blocks the caller on I/O failure of the underlying writer.
func Warnf(format string, args ...any) {
	warn.Printf(format, args...)
}
