// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and output redirection.
//
// This interface is shared by the CLI, the [MCP] server and the SSL Labs client,
// allowing seamless switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
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

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
// Stdout is left to the command results so they can be piped.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger on top of [zerolog], emitting one JSON object
// per line with "level" and "message" keys.
//
// It is silent by default when used by the [MCP] server, since MCP communication
// happens over stdio and any stray byte on stdout breaks the protocol.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [zerolog]: https://github.com/rs/zerolog
type JSONLogger struct {
	mu     sync.RWMutex
	base   zerolog.Logger
	silent bool
}

// NewJSONLogger creates a new structured logger.
// A nil writer discards output. Set silent=true to suppress all output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	l := &JSONLogger{silent: silent}
	l.SetOutput(writer)
	return l
}

// Printf formats and logs a structured message at info level.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message at info level.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.emit(fmt.Sprint(v...))
}

func (j *JSONLogger) emit(msg string) {
	j.mu.RLock()
	base := j.base
	j.mu.RUnlock()

	base.Info().Msg(msg)
}

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards subsequent output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.base = zerolog.New(zerolog.SyncWriter(w))
}

// Discard returns a silent logger, used as the default when a component is
// built without one.
func Discard() Logger { return NewJSONLogger(nil, true) }
