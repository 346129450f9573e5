package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents the severity of log messages.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// ParseLevel converts a string log level to its Level constant.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger writes leveled log lines, optionally mirrored to a rotated file.
type Logger struct {
	out   *log.Logger
	level Level
}

var (
	mu       sync.Mutex
	instance *Logger
)

// Init configures the global logger. Path may be empty for stdout-only
// logging. Safe to call once from main before any request is served.
func Init(path string, level Level, maxSizeMB, maxBackups, maxAgeDays int) {
	mu.Lock()
	defer mu.Unlock()
	instance = New(path, level, maxSizeMB, maxBackups, maxAgeDays)
}

// New builds a Logger writing to stdout and, when path is non-empty, to a
// size/age-rotated file as well.
func New(path string, level Level, maxSizeMB, maxBackups, maxAgeDays int) *Logger {
	var w io.Writer = os.Stdout
	if path != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		})
	}
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

func get() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = New("", INFO, 0, 0, 0)
	}
	return instance
}

func (l *Logger) logf(lv Level, format string, args ...any) {
	if lv < l.level {
		return
	}
	l.out.Printf("[%s] %s", levelNames[lv], fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { get().logf(DEBUG, format, args...) }
func Infof(format string, args ...any)  { get().logf(INFO, format, args...) }
func Warnf(format string, args ...any)  { get().logf(WARN, format, args...) }
func Errorf(format string, args ...any) { get().logf(ERROR, format, args...) }
