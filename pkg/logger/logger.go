package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Logger is a small leveled wrapper around the standard library logger.
type Logger struct {
	level Level
	info  *log.Logger
	err   *log.Logger
	debug *log.Logger
	fatal *log.Logger
}

func New(level string) *Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		level: ParseLevel(level),
		info:  log.New(os.Stdout, "INFO: ", flags),
		err:   log.New(os.Stderr, "ERROR: ", flags),
		debug: log.New(os.Stdout, "DEBUG: ", flags),
		fatal: log.New(os.Stderr, "FATAL: ", flags),
	}
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *Logger {
	return &Logger{
		level: LevelInfo,
		info:  log.New(io.Discard, "", 0),
		err:   log.New(io.Discard, "", 0),
		debug: log.New(io.Discard, "", 0),
		fatal: log.New(io.Discard, "", 0),
	}
}

func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	_ = l.info.Output(2, sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...any) {
	_ = l.err.Output(2, sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	_ = l.debug.Output(2, sprintf(format, v...))
}

func (l *Logger) Fatal(format string, v ...any) {
	_ = l.fatal.Output(2, sprintf(format, v...))
	os.Exit(1)
}

// Writer exposes the info stream, e.g. for access-log middleware.
func (l *Logger) Writer() io.Writer { return l.info.Writer() }
