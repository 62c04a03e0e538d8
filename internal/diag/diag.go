// Package diag provides the diagnostics side channel for hook runs.
// Warnings and debug output go here, never to stdout, so they can never mix
// with the decision envelope.
package diag

import (
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// NewLogger builds the hook's diagnostic logger. Verbose mode lowers the
// level to debug, which includes per-category rule counts.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// FileSink appends diagnostics to a log file shared by concurrently running
// hook processes, taking a file lock around each write so entries from
// different processes do not interleave.
type FileSink struct {
	path string
	lock *flock.Flock
}

// NewFileSink creates a sink appending to the file at path. The file and
// its sibling lock file are created on first write.
func NewFileSink(path string) *FileSink {
	return &FileSink{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Write implements io.Writer.
func (s *FileSink) Write(p []byte) (int, error) {
	if err := s.lock.Lock(); err != nil {
		return 0, err
	}
	defer s.lock.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return f.Write(p)
}
