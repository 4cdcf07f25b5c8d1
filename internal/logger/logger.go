// Package logger provides structured JSON logging and lightweight run
// metrics for menuwatch.
//
// Log lines are single JSON objects with a timestamp, level, message, and
// optional structured fields, written to stderr so they never mix with
// report output on stdout. Metrics track counters and timings across a
// run; the snapshot is logged at the end of a verbose run.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a config string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return Level(s)
	default:
		return LevelInfo
	}
}

// Fields represents structured log fields
type Fields map[string]interface{}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Logger writes structured log entries at or above a minimum level
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger with the given minimum level and output destination
func New(level Level, output io.Writer) *Logger {
	return &Logger{minLevel: level, output: output}
}

// SetDefault replaces the package-level logger used by the convenience
// functions.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, marshalErr := json.Marshal(e)
	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			e.Timestamp, e.Level, e.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }
func (l *Logger) Info(message string, fields Fields)  { l.log(LevelInfo, message, fields, nil) }
func (l *Logger) Warn(message string, fields Fields)  { l.log(LevelWarn, message, fields, nil) }

// Error logs an error message together with the error itself.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using the default logger

func Debug(message string, fields Fields) { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)  { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)  { defaultLogger.Warn(message, fields) }

func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}
