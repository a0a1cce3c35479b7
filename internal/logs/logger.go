package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the name of the log file inside the log directory
const FileName = "debug.log"

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Logging is discarded until Initialize points it at a directory; the TUI
// owns the terminal, so nothing goes to stdout or stderr.
func init() {
	Logger = newLogger(io.Discard)
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[daytrace] ", log.LstdFlags|log.Lshortfile)
}

// Initialize reinitializes the logger to append to debug.log in logDir,
// creating the directory when needed.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, FileName)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Printf("Failed to open new log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = newLogger(f)

	Logger.Printf("Logger initialized at: %s", logPath)

	return nil
}

// Close closes the log file and discards further output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = newLogger(io.Discard)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
