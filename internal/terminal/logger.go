package terminal

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style represents a log message style.
type Style string

const (
	StyleInfo    Style = "info"
	StyleSuccess Style = "success"
	StyleWarning Style = "warning"
	StyleError   Style = "error"
	StyleDim     Style = "dim"
)

// LevelEnvVars are consulted in order for the log verbosity.
// LOGGING is the name older grib installs used.
var LevelEnvVars = []string{"GRIB_LOG_LEVEL", "LOGGING"}

// Logger provides styled, levelled logging.
type Logger struct {
	zl *zap.Logger
}

// NewLogger creates a logger writing to stderr at the level selected by the
// environment.
func NewLogger() *Logger {
	return New(os.Stderr, LevelFromEnv())
}

// New creates a logger writing to w. Messages below level are dropped.
func New(w io.Writer, level zapcore.Level) *Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      encodeTag,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return &Logger{zl: zap.New(core)}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// LevelFromEnv returns the level named by the first set variable in
// LevelEnvVars. Unknown names and unset variables yield info.
func LevelFromEnv() zapcore.Level {
	for _, name := range LevelEnvVars {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return zapcore.InfoLevel
		}
		return level
	}
	return zapcore.InfoLevel
}

func encodeTag(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	tagColor := Cyan
	switch {
	case level <= zapcore.DebugLevel:
		tagColor = Dim
	case level == zapcore.WarnLevel:
		tagColor = Yellow
	case level >= zapcore.ErrorLevel:
		tagColor = Red
	}
	enc.AppendString(fmt.Sprintf("%s[%s%sgrib%s%s]%s",
		Color(Dim), Color(Reset), Color(tagColor), Color(Reset), Color(Dim), Color(Reset)))
}

// Log prints a styled log message.
func (l *Logger) Log(msg string, style Style) {
	switch style {
	case StyleDim:
		l.zl.Debug(Color(Dim) + msg + Color(Reset))
	case StyleWarning:
		l.zl.Warn(msg)
	case StyleError:
		l.zl.Error(msg)
	case StyleSuccess:
		l.zl.Info(Color(Green) + msg + Color(Reset))
	default:
		l.zl.Info(msg)
	}
}

// Logf prints a formatted styled log message.
func (l *Logger) Logf(style Style, format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), style)
}

// Enabled reports whether messages of the given style would be written.
func (l *Logger) Enabled(style Style) bool {
	level := zapcore.InfoLevel
	switch style {
	case StyleDim:
		level = zapcore.DebugLevel
	case StyleWarning:
		level = zapcore.WarnLevel
	case StyleError:
		level = zapcore.ErrorLevel
	}
	return l.zl.Core().Enabled(level)
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}
