package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	mx     sync.Mutex
	out    io.Writer = os.Stderr
	level            = LevelWarning
	logger *log.Logger
)

func init() {
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	SetLevel(LevelWarning)
}

// SetLevel changes the minimum level for messages to be written.
func SetLevel(l Level) {
	mx.Lock()
	defer mx.Unlock()
	level = l
	apply()
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	mx.Lock()
	defer mx.Unlock()
	out = w
	apply()
}

// Logger returns the underlying logger.
func Logger() *log.Logger {
	return logger
}

func apply() {
	switch level {
	case LevelDebug:
		logger.SetOutput(out)
		logger.SetLevel(log.DebugLevel)
	case LevelInfo:
		logger.SetOutput(out)
		logger.SetLevel(log.InfoLevel)
	case LevelWarning:
		logger.SetOutput(out)
		logger.SetLevel(log.WarnLevel)
	case LevelError:
		logger.SetOutput(out)
		logger.SetLevel(log.ErrorLevel)
	case LevelNone:
		logger.SetOutput(io.Discard)
	}
}

func Debug(msg string, v ...interface{}) {
	logger.Debugf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	logger.Infof(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	logger.Warnf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	logger.Errorf(msg, v...)
}
