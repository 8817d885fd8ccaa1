package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "INFO"
}

// ParseLogLevel converts a string log level to its LogLevel constant.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Options configures a Logger. An empty Path logs to stdout only.
type Options struct {
	Path       string
	Level      LogLevel
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger writes levelled lines to stdout and, when configured, to a rotated file.
type Logger struct {
	out   *log.Logger
	level LogLevel
	mu    sync.RWMutex
}

var (
	instance = New(Options{Level: INFO})
	once     sync.Once
)

// New creates a logger from opts.
func New(opts Options) *Logger {
	var w io.Writer = os.Stdout
	if opts.Path != "" {
		dir := filepath.Dir(opts.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("[WARN] cannot create log directory %s, logging to stdout only: %v", dir, err)
		} else {
			w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
				Filename:   opts.Path,
				MaxSize:    opts.MaxSize,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAge,
				Compress:   opts.Compress,
			})
		}
	}

	return &Logger{
		out:   log.New(w, "", log.LstdFlags|log.Lshortfile),
		level: opts.Level,
	}
}

// Init replaces the global logger once; later calls are ignored.
func Init(opts Options) {
	once.Do(func() {
		instance = New(opts)
	})
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) enabled(level LogLevel) bool {
	return level >= l.GetLevel()
}

func (l *Logger) output(level LogLevel, msg string) {
	if !l.enabled(level) {
		return
	}
	// skip output, Logf/Logw and the package-level helper
	l.out.Output(4, "["+level.String()+"] "+msg)
}

// Logf logs a formatted message at level.
func (l *Logger) Logf(level LogLevel, format string, v ...interface{}) {
	l.output(level, fmt.Sprintf(format, v...))
}

// Logw logs msg followed by key=value pairs.
func (l *Logger) Logw(level LogLevel, msg string, keyvals ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.output(level, msg+formatKeyvals(keyvals))
}

func formatKeyvals(keyvals []interface{}) string {
	if len(keyvals) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(keyvals); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, "%v=<missing>", keyvals[i])
		}
	}
	return b.String()
}

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) {
	instance.Logf(DEBUG, format, v...)
}

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) {
	instance.Logf(INFO, format, v...)
}

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) {
	instance.Logf(WARN, format, v...)
}

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) {
	instance.Logf(ERROR, format, v...)
}

// Fatalf logs a formatted fatal-level message and exits the program.
func Fatalf(format string, v ...interface{}) {
	instance.Logf(FATAL, format, v...)
	os.Exit(1)
}

// Infow logs msg with key=value pairs at info level.
func Infow(msg string, keyvals ...interface{}) {
	instance.Logw(INFO, msg, keyvals...)
}

// Warnw logs msg with key=value pairs at warn level.
func Warnw(msg string, keyvals ...interface{}) {
	instance.Logw(WARN, msg, keyvals...)
}

// Errorw logs msg with key=value pairs at error level.
func Errorw(msg string, keyvals ...interface{}) {
	instance.Logw(ERROR, msg, keyvals...)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	instance.SetLevel(level)
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	return instance.GetLevel()
}
