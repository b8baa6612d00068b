package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the file sink.
const (
	DefaultFile       = "get_title.log"
	DefaultMaxSizeMB  = 1
	DefaultMaxBackups = 3
)

// Options configure the console and file sinks.
type Options struct {
	Console    io.Writer
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      slog.Level
}

// New constructs a logger writing the same lines to the console and to a
// size-bounded rotating file. The returned closer releases the file.
func New(opts Options) (*slog.Logger, io.Closer) {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.File == "" {
		opts.File = DefaultFile
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = DefaultMaxSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = DefaultMaxBackups
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}

	h := newLineHandler(io.MultiWriter(opts.Console, file), opts.Level)
	return slog.New(h), file
}
