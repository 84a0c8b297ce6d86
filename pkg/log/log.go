// Copyright 2025 the anonydoc authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent document entries
	nameWidth  = 35 // base width for document path
	modeWidth  = 14 // width for processing mode
)

// 🎯 DocOperation represents one processed document for logging
type DocOperation struct {
	Path     string // Document path
	Mode     string // anonymize / pseudonymize / reverse
	Entities int    // Entities replaced
	Err      error  // Terminal failure for this document, if any
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	docs    int
	failed  int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 formatDocOperation formats one document line for display
func (l *Logger) formatDocOperation(op DocOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.Entities > 0:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	detail := fmt.Sprintf("%d entities", op.Entities)
	if op.Err != nil {
		detail = op.Err.Error()
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", modeWidth, op.Mode)),
		detail)
}

// 📝 LogDocOperation logs one processed document
func (l *Logger) LogDocOperation(op DocOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.docs++
	if op.Err != nil {
		l.failed++
	}

	fmt.Fprintln(l.console, l.formatDocOperation(op))

	evt := l.zlog.Info()
	if op.Err != nil {
		evt = l.zlog.Error().Err(op.Err)
	}
	evt.
		Str("document", op.Path).
		Str("mode", op.Mode).
		Int("entities", op.Entities).
		Msg("document processed")
}

// 📝 Summary prints the batch summary and resets the counters
func (l *Logger) Summary() {
	l.mu.Lock()
	docs, failed := l.docs, l.failed
	l.docs, l.failed = 0, 0
	l.mu.Unlock()

	msg := fmt.Sprintf("%d documents processed, %d failed", docs, failed)
	if failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	}
	l.zlog.Info().Int("documents", docs).Int("failed", failed).Msg("batch complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("anonydoc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Success.Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Warning.Println(msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Error.Println(msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	pterm.Info.Println(msg)
	l.zlog.Info().Msg(msg)
}
