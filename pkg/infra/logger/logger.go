package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logsDir        = "logs"
	fileBufferSize = 32 * 1024
)

type Options struct {
	// Level is a logrus level name; anything unparsable falls back to info.
	Level string
	// File, when set, is a file name under logs/ receiving the JSON stream
	// asynchronously. The console always receives every entry.
	File string
	// Console overrides the console destination, mainly for tests.
	Console io.Writer
}

func NewLogger(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(opts.Level))

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	if opts.File == "" {
		logger.SetOutput(console)
		return logger, io.NopCloser(nil), nil
	}

	logFile := filepath.Clean(filepath.Join(logsDir, opts.File))
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		return nil, nil, fmt.Errorf("invalid log file path %q: must be in %s directory", opts.File, logsDir)
	}
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(console))

	return logger, asyncWriter, nil
}

func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
