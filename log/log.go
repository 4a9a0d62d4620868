// Package log is the diagnostics channel. It wraps the standard library
// logger and can translate line feeds for terminals in raw mode, where a bare
// "\n" moves the cursor down without returning it to the first column.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
)

type Logger struct {
	l       *log.Logger
	rawMode bool
}

var (
	crlfPrefixer = regexp.MustCompile(`(?:([^\r])\n|^\n)`)
)

var std = New(os.Stderr, "", 0, false)

// Default returns the logger used by the package-level functions. It writes
// to stderr without timestamps, since diagnostics already name file and line.
func Default() *Logger { return std }

func New(out io.Writer, prefix string, flag int, rawMode bool) *Logger {
	return NewFromLogger(log.New(out, prefix, flag), rawMode)
}

func NewFromLogger(l *log.Logger, rawMode bool) *Logger {
	return &Logger{l: l, rawMode: rawMode}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, "", 0, false)
}

func (l *Logger) fixString(str string) string {
	if !l.rawMode {
		return str
	}

	s := crlfPrefixer.ReplaceAllString(str, "$1\r\n")
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\r\n"
	}
	return s
}

// SetRawMode toggles CRLF translation. It returns a function restoring the
// previous mode.
func (l *Logger) SetRawMode(rawMode bool) (restore func()) {
	old := l.rawMode
	l.rawMode = rawMode
	return func() { l.rawMode = old }
}

// Print calls l.Output to print to the logger.
// Arguments are handled in the manner of [fmt.Print].
func (l *Logger) Print(v ...any) {
	l.l.Output(2, l.fixString(fmt.Sprint(v...)))
}

// Printf calls l.Output to print to the logger.
// Arguments are handled in the manner of [fmt.Printf].
func (l *Logger) Printf(format string, v ...any) {
	l.l.Output(2, l.fixString(fmt.Sprintf(format, v...)))
}

// Println calls l.Output to print to the logger.
// Arguments are handled in the manner of [fmt.Println].
func (l *Logger) Println(v ...any) {
	l.l.Output(2, l.fixString(fmt.Sprintln(v...)))
}

// These functions write to the default logger.

func Println(v ...any) {
	std.l.Output(2, std.fixString(fmt.Sprintln(v...)))
}

func Fatalln(v ...any) {
	std.l.Output(2, std.fixString(fmt.Sprintln(v...)))
	os.Exit(1)
}
