// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/express-crud-scaffold/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for informational and debug output.
//
// Debug output is suppressed unless verbose mode is enabled with SetVerbose.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Debugf formats and prints a message only in verbose mode.
	Debugf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
	// SetVerbose enables or disables debug output.
	SetVerbose(enabled bool)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct {
	logger  *log.Logger
	mu      sync.RWMutex
	verbose bool
}

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Debugf prints a "debug: " prefixed message when verbose mode is enabled.
func (c *CLILogger) Debugf(format string, v ...any) {
	c.mu.RLock()
	verbose := c.verbose
	c.mu.RUnlock()

	if verbose {
		c.logger.Printf("debug: "+format, v...)
	}
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// SetVerbose enables or disables debug output.
func (c *CLILogger) SetVerbose(enabled bool) {
	c.mu.Lock()
	c.verbose = enabled
	c.mu.Unlock()
}

// entry is a single JSON log line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// JSONLogger implements Logger by writing one JSON object per line.
// It is meant for scripted use where the scaffolder's output is consumed
// by another tool.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu      sync.Mutex
	writer  io.Writer
	silent  bool
	verbose bool
}

// NewJSONLogger creates a new JSON logger writing to writer.
// A nil writer discards output. When silent is true every message is suppressed.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs an "info" level message.
func (j *JSONLogger) Printf(format string, v ...any) {
	j.emit("info", fmt.Sprintf(format, v...))
}

// Println logs an "info" level message built with fmt.Sprint semantics.
func (j *JSONLogger) Println(v ...any) {
	j.emit("info", fmt.Sprint(v...))
}

// Debugf formats and logs a "debug" level message when verbose mode is enabled.
func (j *JSONLogger) Debugf(format string, v ...any) {
	j.mu.Lock()
	verbose := j.verbose
	j.mu.Unlock()

	if verbose {
		j.emit("debug", fmt.Sprintf(format, v...))
	}
}

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards output.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

// SetVerbose enables or disables debug output.
func (j *JSONLogger) SetVerbose(enabled bool) {
	j.mu.Lock()
	j.verbose = enabled
	j.mu.Unlock()
}

// emit encodes a line into a pooled buffer and writes it under the lock,
// so concurrent writers never interleave partial lines.
func (j *JSONLogger) emit(level, msg string) {
	if j.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry{Level: level, Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	_, _ = buf.WriteTo(j.writer)
	j.mu.Unlock()
}
