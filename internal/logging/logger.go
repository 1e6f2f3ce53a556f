// Package logging provides config-driven categorized file logging for the
// goldbach TUI, which owns the terminal and cannot log to stdout. Logs are
// written to .goldbach/logs/ with separate files per category, gated by the
// debug flag in .goldbach/config.json - when off, no logs are written.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category.
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategoryCompute Category = "compute" // Core analysis runs and timings
	CategoryUI      Category = "ui"      // TUI page transitions, input handling
	CategorySession Category = "session" // Stats persistence, shutdown
)

// loggingConfig mirrors the logging section of the app config to avoid a
// circular import on the config package.
type loggingConfig struct {
	Debug      bool            `json:"debug"`
	Categories map[string]bool `json:"categories"`
}

type configFile struct {
	Logging loggingConfig `json:"logging"`
}

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	config    loggingConfig
	configMu  sync.RWMutex
)

// Initialize sets up the logging directory and loads the logging section of
// dir/config.json. Call once at startup with the application config dir.
// With debug off (or no config file) every logger is a silent no-op.
func Initialize(dir string) error {
	if dir == "" {
		return fmt.Errorf("config dir required")
	}

	logsDir = filepath.Join(dir, "logs")

	if err := loadConfig(filepath.Join(dir, "config.json")); err != nil {
		fmt.Fprintf(os.Stderr, "[logging] warning: could not load config: %v\n", err)
		config.Debug = false
	}

	if !config.Debug {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== goldbach logging initialized ===")
	boot.Info("Logs directory: %s", logsDir)

	return nil
}

func loadConfig(path string) error {
	configMu.Lock()
	defer configMu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config.Debug = false
			return nil
		}
		return err
	}

	var cf configFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	config = cf.Logging
	return nil
}

// IsCategoryEnabled reports whether a category currently logs anywhere.
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()

	if !config.Debug {
		return false
	}
	if config.Categories == nil {
		return true
	}
	enabled, exists := config.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) the logger for a category. Disabled categories
// get a no-op logger, so call sites never branch on configuration.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) || logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix keeps rotation a matter of deleting old files.
	filename := fmt.Sprintf("%s_%s.log", time.Now().Format("2006-01-02"), category)
	file, err := os.OpenFile(filepath.Join(logsDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] warning: could not open log file: %v\n", err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func (l *Logger) printf(level, format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Debug logs a debug-level message.
func (l *Logger) Debug(format string, args ...interface{}) { l.printf("DEBUG", format, args...) }

// Info logs an info-level message.
func (l *Logger) Info(format string, args ...interface{}) { l.printf("INFO", format, args...) }

// Warn logs a warning-level message.
func (l *Logger) Warn(format string, args ...interface{}) { l.printf("WARN", format, args...) }

// Error logs an error-level message.
func (l *Logger) Error(format string, args ...interface{}) { l.printf("ERROR", format, args...) }

// CloseAll flushes and closes every open log file. Call on shutdown.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for cat, l := range loggers {
		if l.file != nil {
			_ = l.file.Close()
		}
		delete(loggers, cat)
	}
}

// Compute logs to the compute category.
func Compute(format string, args ...interface{}) { Get(CategoryCompute).Info(format, args...) }

// UI logs to the ui category.
func UI(format string, args ...interface{}) { Get(CategoryUI).Info(format, args...) }

// Session logs to the session category.
func Session(format string, args ...interface{}) { Get(CategorySession).Info(format, args...) }
