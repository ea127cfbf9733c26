package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

// Logger writes prefixed lines, dropping those more verbose than its level.
type Logger interface {
	Info(message string, v ...interface{})
	Warn(message string, v ...interface{})
	Error(message string, v ...interface{})
	Debug(message string, v ...interface{})
	Enabled(level Level) bool
	GetWriter() io.Writer
}

// Higher levels are more verbose.
const (
	LogLevelError Level = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var levelNames = map[string]Level{
	"error": LogLevelError,
	"warn":  LogLevelWarn,
	"info":  LogLevelInfo,
	"debug": LogLevelDebug,
}

func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
	}

	return level, nil
}

type logger struct {
	prefix      string
	innerLogger *log.Logger
	level       Level
}

func GetLogger(prefix string, level Level) Logger {
	return New(os.Stdout, prefix, level)
}

func New(w io.Writer, prefix string, level Level) Logger {
	return &logger{
		prefix:      prefix,
		innerLogger: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		level:       level,
	}
}

func (l *logger) Info(message string, v ...interface{}) {
	l.logAt(LogLevelInfo, "[INFO]", message, v...)
}

func (l *logger) Warn(message string, v ...interface{}) {
	l.logAt(LogLevelWarn, "[WARN]", message, v...)
}

func (l *logger) Error(message string, v ...interface{}) {
	l.logAt(LogLevelError, "[ERROR]", message, v...)
}

func (l *logger) Debug(message string, v ...interface{}) {
	l.logAt(LogLevelDebug, "[DEBUG]", message, v...)
}

func (l *logger) Enabled(level Level) bool {
	return level <= l.level
}

func (l *logger) logAt(level Level, tag string, message string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	l.innerLogger.Printf("%v %v %v\n", tag, l.prefix, fmt.Sprintf(message, v...))
}

func (l *logger) GetWriter() io.Writer {
	return l.innerLogger.Writer()
}
