package file

import (
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLogger implements LoggerInstance by writing JSON lines to a rotating
// log file.
type FileLogger struct {
	logger *log.Logger
	out    *lumberjack.Logger
}

// FileLoggerParams configures the log file and its rotation.
//
// MaxSizeMB is the size in megabytes at which the file is rotated,
// MaxBackups the number of rotated files kept and MaxAgeDays how long they
// are kept. Zero values fall back to lumberjack's defaults.
type FileLoggerParams struct {
	Path       string
	Debug      bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewFileLogger creates a file logger. The file is opened lazily on the
// first write.
func NewFileLogger(params FileLoggerParams) *FileLogger {
	out := &lumberjack.Logger{
		Filename:   params.Path,
		MaxSize:    params.MaxSizeMB,
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
		Compress:   params.Compress,
	}

	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Formatter:       log.JSONFormatter,
	})

	return &FileLogger{
		logger: logger,
		out:    out,
	}
}

// Close flushes and closes the underlying file.
func (f *FileLogger) Close() error {
	return f.out.Close()
}

// Log writes a message at the default level.
func (f *FileLogger) Log(message string, keyvals ...any) {
	f.logger.Print(message, keyvals...)
}

// Info writes a message at INFO level.
func (f *FileLogger) Info(message string, keyvals ...any) {
	f.logger.Info(message, keyvals...)
}

// Warn writes a message at WARN level.
func (f *FileLogger) Warn(message string, keyvals ...any) {
	f.logger.Warn(message, keyvals...)
}

// Error writes a message at ERROR level.
func (f *FileLogger) Error(message string, keyvals ...any) {
	f.logger.Error(message, keyvals...)
}

// Debug writes a message at DEBUG level.
func (f *FileLogger) Debug(message string, keyvals ...any) {
	f.logger.Debug(message, keyvals...)
}

// Fatal writes a message at FATAL level and terminates the program.
func (f *FileLogger) Fatal(message string, keyvals ...any) {
	f.logger.Fatal(message, keyvals...)
}
