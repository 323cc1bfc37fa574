// Package logging holds the process-wide logger shared by the sclex packages.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogFormat names a logrus formatter.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"

	// DefaultLogLevel is the level used until a caller raises or lowers it.
	DefaultLogLevel = logrus.WarnLevel
)

// DefaultLogger is the base logrus logger. It is separate from the logrus
// standard logger so that importing packages never write through it.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(GetFormatter(LogFormatText))
	logger.SetLevel(DefaultLogLevel)
	return logger
}

// GetFormatter returns the formatter for format, falling back to text.
func GetFormatter(format LogFormat) logrus.Formatter {
	switch LogFormat(strings.ToLower(string(format))) {
	case LogFormatJSON:
		return &logrus.JSONFormatter{DisableTimestamp: true}
	default:
		return &logrus.TextFormatter{DisableTimestamp: true}
	}
}

// SetLogLevel updates the DefaultLogger with a new logrus.Level.
func SetLogLevel(level logrus.Level) {
	DefaultLogger.SetLevel(level)
}

// SetLogLevelToDebug updates the DefaultLogger with logrus.DebugLevel.
func SetLogLevelToDebug() {
	DefaultLogger.SetLevel(logrus.DebugLevel)
}

// SetLogFormat swaps the formatter of the DefaultLogger.
func SetLogFormat(format LogFormat) {
	DefaultLogger.SetFormatter(GetFormatter(format))
}

// SetOutput redirects the DefaultLogger, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := DefaultLogger.Out
	DefaultLogger.SetOutput(w)
	return prev
}
