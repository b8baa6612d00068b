package logger

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink exposes the rotating writer behind the closer returned by New.
func FileSink(c io.Closer) *lumberjack.Logger {
	sink, _ := c.(*lumberjack.Logger)
	return sink
}
