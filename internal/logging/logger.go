package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger defines a minimal, printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var (
	sinkInstance *sink
	sinkOnce     sync.Once
)

// sink is the shared destination every component logger writes to.
type sink struct {
	file   *os.File
	logger *log.Logger
	level  LogLevel
	mu     sync.Mutex
}

func getSink() *sink {
	sinkOnce.Do(func() {
		s := &sink{level: INFO}
		home, err := os.UserHomeDir()
		if err == nil {
			logPath := filepath.Join(home, "rag-server-debug.log")
			if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				s.file = file
				s.logger = log.New(file, "", 0) // We format ourselves
			}
		}
		sinkInstance = s
	})
	return sinkInstance
}

// SetLevel sets the minimum level for all component loggers.
func SetLevel(level LogLevel) {
	s := getSink()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// componentLogger scopes log lines to a named component.
type componentLogger struct {
	sink      *sink
	component string
}

// NewComponentLogger creates a logger for a specific component
func NewComponentLogger(component string) Logger {
	return &componentLogger{sink: getSink(), component: component}
}

func (l *componentLogger) log(level LogLevel, format string, args ...any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	// Format: 2025-09-30 12:34:56 [INFO] [ComponentName] Message
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	component := l.component
	if component == "" {
		component = "SERVER"
	}

	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("%s [%s] [%s] %s\n",
		timestamp, levelToString(level), component, message)

	sanitized := sanitizeLogLine(logLine)

	if s.logger != nil {
		s.logger.Print(sanitized)
	}

	// Also write to stdout for deploy log redirection
	fmt.Print(sanitized)
}

func (l *componentLogger) Debug(format string, args ...any) { l.log(DEBUG, format, args...) }
func (l *componentLogger) Info(format string, args ...any)  { l.log(INFO, format, args...) }
func (l *componentLogger) Warn(format string, args ...any)  { l.log(WARN, format, args...) }
func (l *componentLogger) Error(format string, args ...any) { l.log(ERROR, format, args...) }

func levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}

var sensitiveKeyValuePattern = regexp.MustCompile(
	`(?i)((?:"|')?(?:api[_-]?key|token|secret|password)(?:"|')?\s*(?:=|:)\s*)(?:"|')?([^"'\s,;]+)((?:"|')?)`,
)

func sanitizeLogLine(line string) string {
	return sensitiveKeyValuePattern.ReplaceAllString(line, "$1[REDACTED]$3")
}
