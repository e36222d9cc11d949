/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for Akaylee CSV Lint. Structured logrus logging with
timestamped files and multiple output formats. Console output is optional because hook
mode must keep stderr clean for the validation report itself.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"` // Empty disables file output
	MaxFiles  int       `json:"max_files"`  // Old log files kept before cleanup
	Console   bool      `json:"console"`    // Mirror log output to stderr
	Timestamp bool      `json:"timestamp"`
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid or missing values
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive when file output is enabled")
	}
	return nil
}

// DefaultConfig returns the configuration used when none is supplied:
// info-level custom-format logging to stderr, no files.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		OutputDir: "",
		MaxFiles:  10,
		Console:   true,
		Timestamp: true,
		Colors:    true,
	}
}

// Logger provides structured logging for the validator
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
}

// NewLogger creates a new logger instance
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	if err := l.setFormatter(); err != nil {
		return err
	}
	return l.setupOutputs()
}

func (l *Logger) setFormatter() error {
	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   l.config.Timestamp,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})
	case LogFormatCustom:
		l.logger.SetFormatter(&CustomFormatter{
			Timestamp: l.config.Timestamp,
			Colors:    l.config.Colors,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}
	return nil
}

// setupOutputs wires file and console sinks. With both disabled the logger
// stays constructed but silent, which is what hook mode wants by default.
func (l *Logger) setupOutputs() error {
	var writers []io.Writer

	if l.config.OutputDir != "" {
		if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		path := filepath.Join(l.config.OutputDir, fmt.Sprintf("akaylee-csvlint_%s.log", timestamp))
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.fileHandle = file
		writers = append(writers, file)
	}

	if l.config.Console {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		l.logger.SetOutput(io.Discard)
	case 1:
		l.logger.SetOutput(writers[0])
	default:
		l.logger.SetOutput(io.MultiWriter(writers...))
	}
	return nil
}

// cleanup removes old log files beyond MaxFiles
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, "akaylee-csvlint_*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}
	sort.Slice(files, func(i, j int) bool {
		statI, _ := os.Stat(files[i])
		statJ, _ := os.Stat(files[j])
		return statI.ModTime().Before(statJ.ModTime())
	})
	for _, file := range files[:len(files)-l.config.MaxFiles] {
		os.Remove(file)
	}
	return nil
}

// Close closes the logger and performs cleanup
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		l.fileHandle.Close()
	}
	if err := l.cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup log files: %w", err)
	}
	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message with structured fields
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warning(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
