package main

import (
	"fmt"
	"io"

	"github.com/CatherineTower/air-ride-statistics/config"
	"github.com/CatherineTower/air-ride-statistics/datafile"
	"github.com/CatherineTower/air-ride-statistics/log"
	"github.com/CatherineTower/air-ride-statistics/parser"
	"github.com/CatherineTower/air-ride-statistics/record"
	"github.com/CatherineTower/air-ride-statistics/report"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// session holds everything resolved from settings before files are read.
type session struct {
	settings *config.Settings
	labels   *report.Labels
	parser   *parser.Parser

	// logger takes malformed-line diagnostics and is silenced by --quiet.
	// errLog takes file failures and is never silenced.
	logger *log.Logger
	errLog *log.Logger
}

type fileResult struct {
	name  string
	stats datafile.Stats
	err   error
}

func newSession(opts *rootOptions, stderr io.Writer) (*session, error) {
	settings, err := config.Resolve(opts.configPath)
	if err != nil {
		return nil, err
	}

	v, labels := vocab.Default(), report.DefaultLabels()
	if settings.Vocabulary != "" {
		if v, labels, err = config.LoadVocabulary(settings.Vocabulary); err != nil {
			return nil, err
		}
	}

	logger := log.New(stderr, "", 0, false)
	if opts.quiet {
		logger = log.Discard()
	}

	return &session{
		settings: settings,
		labels:   labels,
		parser: parser.New(
			parser.WithVocabulary(v),
			parser.WithSeparator(settings.SeparatorByte()),
			parser.WithComment(settings.CommentByte()),
		),
		logger: logger,
		errLog: log.New(stderr, "", 0, false),
	}, nil
}

func (s *session) vocabulary() *vocab.Vocabulary {
	return s.parser.Vocabulary()
}

// readFiles reads every path in order and returns all records found. A file
// that cannot be opened or read is reported and the rest are still read.
func (s *session) readFiles(paths []string) ([]record.Record, []fileResult) {
	var records []record.Record
	results := make([]fileResult, 0, len(paths))

	for _, path := range paths {
		res := fileResult{name: path}
		records, res.stats, res.err = s.readFile(path, records)
		if res.err != nil {
			s.errLog.Println(res.err)
		}
		results = append(results, res)
	}
	return records, results
}

func (s *session) readFile(path string, records []record.Record) (_ []record.Record, stats datafile.Stats, err error) {
	f, err := datafile.Open(path,
		datafile.WithParser(s.parser),
		datafile.WithLogger(s.logger),
		datafile.WithMaxLineLength(s.settings.MaxLineLength),
		datafile.WithInitialCapacity(s.settings.InitialCapacity),
	)
	if err != nil {
		return records, datafile.Stats{}, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close data file %s: %w", path, closeErr)
		}
	}()

	store, err := f.ReadAll()
	if store != nil {
		records = append(records, store.Records()...)
		store.Release()
	}
	return records, f.Stats(), err
}

// failures counts the results that ended in an error.
func failures(results []fileResult) int {
	n := 0
	for _, res := range results {
		if res.err != nil {
			n++
		}
	}
	return n
}

func filterRecords(s *session, expr string, records []record.Record) ([]record.Record, error) {
	if expr == "" {
		return records, nil
	}

	filter, err := report.NewFilter(expr, s.vocabulary())
	if err != nil {
		return nil, err
	}
	return filter.Apply(records)
}

func openFailureError(results []fileResult) error {
	if n := failures(results); n > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d files could not be read", n, len(results))}
	}
	return nil
}
