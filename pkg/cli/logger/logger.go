package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger  = zerolog.Nop()
	logFile *os.File
)

// Init points the package logger at a timestamped file under dir.
// If the file cannot be created, logs go to stderr instead.
// Until Init is called every log call is discarded.
func Init(dir, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		setOutput(os.Stderr, lvl)
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("cli-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		setOutput(os.Stderr, lvl)
		return fmt.Errorf("failed to open log file: %w", err)
	}

	CloseLog()
	logFile = f
	setOutput(f, lvl)
	return nil
}

func setOutput(w io.Writer, level zerolog.Level) {
	logger = zerolog.New(w).Level(level).With().Timestamp().Str("component", "cli").Logger()
}

// Log writes a debug-level trace message.
func Log(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

// Info writes an info-level message.
func Info(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	logger.Error().Err(err).Msgf(format, v...)
}

// CloseLog closes the log file
func CloseLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
