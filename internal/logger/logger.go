// Package logger writes leveled, timestamped lines to an error stream:
//
//	2024-05-01 13:37:00.042 [INFO] Calculating: 5 + 3
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TimestampLayout is the time prefix of every line (millisecond precision).
const TimestampLayout = "2006-01-02 15:04:05.000"

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name such as "debug" or "warning" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return LevelDebug, fmt.Errorf("unknown log level %q", s)
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	}
	return zerolog.NoLevel
}

func fromZerolog(l zerolog.Level) (Level, bool) {
	switch l {
	case zerolog.DebugLevel:
		return LevelDebug, true
	case zerolog.InfoLevel:
		return LevelInfo, true
	case zerolog.WarnLevel:
		return LevelWarning, true
	case zerolog.ErrorLevel:
		return LevelError, true
	}
	return 0, false
}

// Logger emits one line per call. Lines below the minimum level are dropped.
// Write errors from the underlying stream are ignored.
type Logger struct {
	zl  zerolog.Logger
	now func() time.Time
}

// New creates a logger writing to w. A nil w writes to os.Stderr.
func New(w io.Writer, min Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatTimestamp: func(i interface{}) string {
			s, _ := i.(string)
			return s
		},
		FormatLevel: func(i interface{}) string {
			s, _ := i.(string)
			zl, err := zerolog.ParseLevel(s)
			if err != nil {
				return "[UNKNOWN]"
			}
			if l, ok := fromZerolog(zl); ok {
				return "[" + l.String() + "]"
			}
			return "[" + strings.ToUpper(s) + "]"
		},
	}
	return &Logger{
		zl:  zerolog.New(out).Level(min.zerolog()),
		now: time.Now,
	}
}

// NewStderr creates a logger writing to standard error.
func NewStderr(min Level) *Logger { return New(os.Stderr, min) }

// SetNowFunc overrides the clock used for timestamps (use only in tests).
func (l *Logger) SetNowFunc(f func() time.Time) { l.now = f }

// Log writes message at the given level.
func (l *Logger) Log(level Level, message string) {
	l.zl.WithLevel(level.zerolog()).
		Str(zerolog.TimestampFieldName, l.now().Format(TimestampLayout)).
		Msg(message)
}

func (l *Logger) Debug(message string)   { l.Log(LevelDebug, message) }
func (l *Logger) Info(message string)    { l.Log(LevelInfo, message) }
func (l *Logger) Warning(message string) { l.Log(LevelWarning, message) }
func (l *Logger) Error(message string)   { l.Log(LevelError, message) }

func (l *Logger) Debugf(format string, args ...any) { l.Log(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.Log(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.Log(LevelWarning, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(LevelError, fmt.Sprintf(format, args...)) }
