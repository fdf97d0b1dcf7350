package logger

import (
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Leveled process logger for the harutrip API service.
// - zero external deps, controlled via LOG_LEVEL (debug|info|warn|error|fatal)
// - Init is safe to call more than once; the last call wins.

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	out   = log.New(os.Stdout, "", 0)
	level atomic.Int32
)

func init() { level.Store(int32(LevelInfo)) }

// Init sets the global log level from a case-insensitive name.
// Unrecognized values fall back to info.
func Init(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.Store(int32(LevelDebug))
	case "warn", "warning":
		level.Store(int32(LevelWarn))
	case "error":
		level.Store(int32(LevelError))
	case "fatal":
		level.Store(int32(LevelFatal))
	default:
		level.Store(int32(LevelInfo))
	}
}

func enabled(l Level) bool { return int32(l) >= level.Load() }

func emit(tag, format string, v ...interface{}) {
	out.Printf(time.Now().Format(time.RFC3339)+" ["+tag+"] "+format, v...)
}

func Debugf(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		emit("DEBUG", format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		emit("INFO", format, v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if enabled(LevelWarn) {
		emit("WARN", format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if enabled(LevelError) {
		emit("ERROR", format, v...)
	}
}

func Fatalf(format string, v ...interface{}) {
	emit("FATAL", format, v...)
	os.Exit(1)
}

// Single-string helpers.
func Debug(msg string) { Debugf("%s", msg) }
func Info(msg string)  { Infof("%s", msg) }
func Warn(msg string)  { Warnf("%s", msg) }
func Error(msg string) { Errorf("%s", msg) }

// LevelString reports the active level as its lowercase name.
func LevelString() string {
	switch Level(level.Load()) {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}

// SetOutput redirects log output; used by tests.
func SetOutput(l *log.Logger) { out = l }
