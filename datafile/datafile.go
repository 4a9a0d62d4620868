// Package datafile reads a data file into a record store.
//
// A File moves from open to closed exactly once:
//
//	f, err := datafile.Open(path)
//	if err != nil { ... }
//	defer f.Close()
//	store, err := f.ReadAll()
//
// Malformed lines are reported to the file's logger and skipped. They never
// abort the read.
package datafile

import (
	"errors"
	"fmt"
	"os"

	"github.com/CatherineTower/air-ride-statistics/log"
	"github.com/CatherineTower/air-ride-statistics/parser"
	"github.com/CatherineTower/air-ride-statistics/reader"
	"github.com/CatherineTower/air-ride-statistics/record"
)

var (
	ErrClosed = errors.New("data file is closed")
	// ErrLineTooLong is reported for lines over the maximum line length.
	// Such lines are skipped like any other malformed line.
	ErrLineTooLong = errors.New("line too long")
)

// Stats summarizes the last ReadAll.
type Stats struct {
	// Physical lines read, including blank and comment-only ones.
	Lines int
	// Lines that produced a record.
	Records int
	// Lines that were blank or held only a comment.
	Skipped int
	// Lines that failed to parse.
	Rejected int
}

type File struct {
	file *os.File
	name string

	lineNumber int
	stats      Stats

	parser          *parser.Parser
	logger          *log.Logger
	maxLineLength   int
	initialCapacity int
}

type Option func(*File)

func WithParser(p *parser.Parser) Option {
	return func(f *File) { f.parser = p }
}

// WithLogger sets where malformed-line diagnostics go. The default is
// log.Default().
func WithLogger(l *log.Logger) Option {
	return func(f *File) { f.logger = l }
}

// WithMaxLineLength limits the length of a physical line. Longer lines are
// reported and skipped. 0, the default, means no limit.
func WithMaxLineLength(n int) Option {
	return func(f *File) { f.maxLineLength = n }
}

// WithInitialCapacity sets the capacity of the store ReadAll starts with.
func WithInitialCapacity(n int) Option {
	return func(f *File) { f.initialCapacity = n }
}

// WithDisplayName overrides the name used in diagnostics, which defaults to
// the path given to Open.
func WithDisplayName(name string) Option {
	return func(f *File) { f.name = name }
}

// Open opens path for reading. The returned error wraps the *fs.PathError
// from the file system.
func Open(path string, opts ...Option) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}

	f := &File{
		file:            file,
		name:            path,
		initialCapacity: record.InitialCapacity,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.parser == nil {
		f.parser = parser.New()
	}
	if f.logger == nil {
		f.logger = log.Default()
	}

	return f, nil
}

func (f *File) Name() string { return f.name }

// LineNumber returns the number of the last physical line read.
func (f *File) LineNumber() int { return f.lineNumber }

func (f *File) Stats() Stats { return f.stats }

// ReadAll reads the file to the end and returns every record parsed from it.
// The store is nil only when f is closed. Otherwise a non-nil error means reading stopped early
// because of an I/O failure; the store then holds the records read so far.
func (f *File) ReadAll() (*record.Store, error) {
	if f.file == nil {
		return nil, ErrClosed
	}

	store := record.NewStoreWithCapacity(f.initialCapacity)
	f.lineNumber = 0
	f.stats = Stats{}

	scanner := reader.NewLineScanner(f.file, f.maxLineLength)
	for scanner.Scan() {
		f.lineNumber = scanner.Line()
		f.stats.Lines++

		if scanner.Truncated() {
			f.reject(fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, f.maxLineLength))
			continue
		}

		line := f.parser.Strip(scanner.Text())
		if parser.IsEmpty(line) {
			f.stats.Skipped++
			continue
		}

		r, err := f.parser.Parse(line)
		if err != nil {
			f.reject(err)
			continue
		}

		store.Append(r)
		f.stats.Records++
	}

	if err := scanner.Err(); err != nil {
		return store, fmt.Errorf("failed to read %s at line %d: %w", f.name, f.lineNumber+1, err)
	}
	return store, nil
}

func (f *File) reject(err error) {
	f.stats.Rejected++
	f.logger.Printf("Error in file %s on line %d: %v", f.name, f.lineNumber, err)
}

// Close releases the underlying file. Closing twice is a no-op.
func (f *File) Close() error {
	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil
	return err
}
