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
	"time"

	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
//
// It is satisfied by both [CLILogger] (human-readable output) and
// [JSONLogger] (one JSON object per line), so callers can switch between
// interactive and structured logging without changes.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

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

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with structured output: every call writes a
// single line of the form
//
//	{"time":"2026-01-02T15:04:05Z","level":"info","message":"..."}
//
// It is used by the HTTP server and, silenced, by the MCP stdio server where
// stdout carries the protocol.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	now    func() time.Time
}

// NewJSONLogger creates a new structured logger writing to writer.
// A nil writer discards output. With silent set, every call is a no-op.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
		now:    time.Now,
	}
}

// Printf formats and logs a structured message.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message built with fmt.Sprint semantics.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
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

func (j *JSONLogger) write(msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// json.Marshal of a string never fails.
	quoted, _ := json.Marshal(msg)

	buf.WriteString(`{"time":"`)
	buf.WriteString(j.now().UTC().Format(time.RFC3339))
	buf.WriteString(`","level":"info","message":`)
	buf.Write(quoted)
	buf.WriteString("}\n")

	j.mu.Lock()
	_, _ = j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}
