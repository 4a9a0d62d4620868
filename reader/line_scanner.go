package reader

import (
	"bufio"
	"bytes"
	"io"
	"math"
)

const initialBufferSize = 4 * 1024

// LineScanner reads physical lines and keeps a 1-based count of them. Unlike
// bufio.ScanLines, the returned line keeps its newline.
//
// With a maximum line length, a longer line does not stop the scan. Its first
// maxLineLength bytes are returned with Truncated set, the rest of it is
// dropped, and scanning resumes on the next line.
type LineScanner struct {
	*bufio.Scanner
	line          int
	maxLineLength int

	// Set while the tail of a truncated line is being skipped.
	discarding bool
	truncated  bool
}

// NewLineScanner creates a scanner over r. A maxLineLength of 0 means no
// limit.
func NewLineScanner(r io.Reader, maxLineLength int) *LineScanner {
	s := &LineScanner{Scanner: bufio.NewScanner(r)}

	if maxLineLength > 0 {
		s.maxLineLength = maxLineLength
		// One byte more than the limit is enough to tell that a line is over it.
		s.Scanner.Buffer(make([]byte, 0, min(initialBufferSize, maxLineLength+1)), maxLineLength+1)
		s.Scanner.Split(s.scanLimitedLines)
	} else {
		s.Scanner.Buffer(make([]byte, 0, initialBufferSize), math.MaxInt)
		s.Scanner.Split(ScanLines)
	}

	return s
}

// Scan advances to the next line and bumps the line count. Blank lines are
// counted like any other.
func (s *LineScanner) Scan() bool {
	s.truncated = false
	if !s.Scanner.Scan() {
		return false
	}
	s.line++
	return true
}

// Line returns the number of the line last returned by Scan, or 0 before the
// first call.
func (s *LineScanner) Line() int {
	return s.line
}

// Truncated reports whether the current line was longer than the maximum
// line length and has been cut.
func (s *LineScanner) Truncated() bool {
	return s.truncated
}

func (s *LineScanner) scanLimitedLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexByte(data, '\n')
	if s.discarding {
		if i >= 0 {
			s.discarding = false
			return i + 1, nil, nil
		}
		if atEOF {
			s.discarding = false
		}
		return len(data), nil, nil
	}

	switch {
	case i >= 0 && i <= s.maxLineLength:
		return i + 1, data[:i+1], nil
	case i >= 0:
		s.truncated = true
		return i + 1, data[:s.maxLineLength], nil
	case len(data) > s.maxLineLength:
		s.truncated = true
		s.discarding = !atEOF
		return len(data), data[:s.maxLineLength], nil
	case atEOF:
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

// ScanLines is modified from bufio.ScanLines to not drop carriage returns and
// to return the newline character itself.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		// We have a full newline-terminated line.
		return i + 1, data[0 : i+1], nil
	}
	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}
