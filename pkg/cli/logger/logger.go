package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logger  = log.New(io.Discard, "[page-search] ", log.LstdFlags|log.Lshortfile)
	logFile *os.File
)

// Setup directs log output to a timestamped file under logDir.
// Until Setup is called, log output is discarded so the terminal UI stays clean.
func Setup(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFileName := filepath.Join(logDir, fmt.Sprintf("cli-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

// Log writes a log message
func Log(format string, v ...interface{}) {
	logger.Output(2, fmt.Sprintf(format, v...))
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	logger.Output(2, fmt.Sprintf("ERROR: %s: %v", msg, err))
}

// CloseLog closes the log file
func CloseLog() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logger.SetOutput(io.Discard)
		logFile.Close()
		logFile = nil
	}
}
