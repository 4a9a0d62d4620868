package parser

import (
	"strings"

	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// StripComment truncates line at the first occurrence of comment, if any.
func StripComment(line string, comment byte) string {
	if i := strings.IndexByte(line, comment); i >= 0 {
		return line[:i]
	}
	return line
}

// StripNewline truncates line at the first newline. Carriage returns are left
// in place: IsolateToken skips them as whitespace, so CRLF lines still parse,
// while a line holding only "\r" is not empty.
func StripNewline(line string) string {
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		return line[:i]
	}
	return line
}

// IsEmpty reports whether a stripped line has nothing left to parse.
func IsEmpty(line string) bool {
	return line == ""
}

// IsolateToken skips leading whitespace in field and returns the run of
// letters that follows. Anything after the run is ignored, so "red!" and
// "red blue" both yield "red", and a field with no leading letters yields "".
func IsolateToken(field string) string {
	start := 0
	for start < len(field) && isSpace(field[start]) {
		start++
	}

	end := start
	for end < len(field) && vocab.IsLetter(field[end]) {
		end++
	}
	return field[start:end]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
