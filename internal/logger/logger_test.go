package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/DeafMist/get-title/internal/logger"
	"github.com/stretchr/testify/require"
)

var linePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - (INFO|ERROR|WARN|DEBUG) - .+$`)

func newTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer, string) {
	t.Helper()
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "get_title.log")
	log, closer := logger.New(logger.Options{Console: &console, File: path})
	t.Cleanup(func() { _ = closer.Close() })
	return log, &console, path
}

func TestLineFormat(t *testing.T) {
	log, console, _ := newTestLogger(t)

	log.Info("fetching data", slog.String("url", "http://example.test"))
	log.Error("fetch data", slog.Any("err", errors.New("connection refused")))

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Regexp(t, linePattern, line)
	}
	require.True(t, strings.HasSuffix(lines[0], " - INFO - fetching data url=http://example.test"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], ` - ERROR - fetch data err="connection refused"`), lines[1])
}

func TestFileSinkMirrorsConsole(t *testing.T) {
	log, console, path := newTestLogger(t)

	log.Info("found filtered titles", slog.Int("count", 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, console.String(), string(data))
}

func TestDebugSuppressedAtDefaultLevel(t *testing.T) {
	log, console, _ := newTestLogger(t)

	log.Debug("hidden")
	require.Empty(t, console.String())
}

func TestWithAttrsAndGroups(t *testing.T) {
	log, console, _ := newTestLogger(t)

	log.With(slog.String("run_id", "abc")).WithGroup("tally").Info("type counts", slog.Int("strings", 1))
	log.Info("grouped", slog.Group("tally", slog.Int("others", 0)))

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "type counts run_id=abc tally.strings=1"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], "grouped tally.others=0"), lines[1])
}

func TestValuesQuotedWhenNeeded(t *testing.T) {
	log, console, _ := newTestLogger(t)

	log.Info("filtered title", slog.String("title", "Zeus Battle"), slog.String("empty", ""))
	require.Contains(t, console.String(), `title="Zeus Battle" empty=""`)
}

func TestFileSinkRotationLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "get_title.log")
	_, closer := logger.New(logger.Options{Console: &bytes.Buffer{}, File: path})
	t.Cleanup(func() { _ = closer.Close() })

	sink := logger.FileSink(closer)
	require.NotNil(t, sink)
	require.Equal(t, path, sink.Filename)
	require.Equal(t, 1, sink.MaxSize)
	require.Equal(t, 3, sink.MaxBackups)
}

func TestDefaultFileSink(t *testing.T) {
	_, closer := logger.New(logger.Options{Console: &bytes.Buffer{}})
	t.Cleanup(func() { _ = closer.Close() })

	sink := logger.FileSink(closer)
	require.NotNil(t, sink)
	require.Equal(t, "get_title.log", sink.Filename)
	require.Equal(t, logger.DefaultMaxSizeMB, sink.MaxSize)
	require.Equal(t, logger.DefaultMaxBackups, sink.MaxBackups)
}
