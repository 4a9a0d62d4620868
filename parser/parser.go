// Package parser turns data file lines into records.
//
// A line holds five fields separated by a single character:
//
//	<machine> | <color> | <location> | <event> | <yes/no>
//
// Each field is reduced to its leading run of letters and resolved against
// the matching vocabulary domain. A line yields a record only if all five
// fields resolve and there is no sixth field.
package parser

import (
	"strings"

	"github.com/CatherineTower/air-ride-statistics/record"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

const (
	DefaultSeparator = '|'
	DefaultComment   = '#'
)

const fieldCount = 5

var fieldNames = [fieldCount]string{
	vocab.MachineDomain,
	vocab.ColorDomain,
	vocab.LocationDomain,
	vocab.EventDomain,
	vocab.FlagDomain,
}

type Parser struct {
	vocabulary *vocab.Vocabulary
	separator  byte
	comment    byte
}

type Option func(*Parser)

// WithVocabulary sets the vocabulary fields are resolved against. The
// default is vocab.Default().
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(p *Parser) { p.vocabulary = v }
}

func WithSeparator(sep byte) Option {
	return func(p *Parser) { p.separator = sep }
}

func WithComment(c byte) Option {
	return func(p *Parser) { p.comment = c }
}

func New(opts ...Option) *Parser {
	p := &Parser{
		separator: DefaultSeparator,
		comment:   DefaultComment,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.vocabulary == nil {
		p.vocabulary = vocab.Default()
	}
	return p
}

func (p *Parser) Vocabulary() *vocab.Vocabulary {
	return p.vocabulary
}

// Strip removes the comment and newline from a raw line. The result is empty
// for blank and comment-only lines, which callers should skip.
func (p *Parser) Strip(raw string) string {
	return StripNewline(StripComment(raw, p.comment))
}

// Parse parses an already stripped line. On failure it returns a
// *FieldError and the zero Record.
func (p *Parser) Parse(line string) (record.Record, error) {
	var r record.Record
	rest := line

	for i := 0; i < fieldCount; i++ {
		field, next, err := p.splitField(rest, i)
		if err != nil {
			return record.Record{}, &FieldError{Field: i + 1, Err: err}
		}

		if err := p.resolveField(&r, i, IsolateToken(field)); err != nil {
			return record.Record{}, &FieldError{Field: i + 1, Err: err}
		}
		rest = next
	}

	return r, nil
}

// splitField cuts the text of field i off the front of rest. Every field but
// the last must be followed by a separator; the last must not be.
func (p *Parser) splitField(rest string, i int) (field, next string, err error) {
	last := i == fieldCount-1
	idx := strings.IndexByte(rest, p.separator)

	switch {
	case !last && idx < 0:
		return "", "", ErrMissingSeparator
	case last && idx >= 0:
		return "", "", ErrTrailingField
	case last:
		return rest, "", nil
	}
	return rest[:idx], rest[idx+1:], nil
}

func (p *Parser) resolveField(r *record.Record, i int, token string) error {
	var err error
	switch i {
	case 0:
		r.Machine, err = p.vocabulary.Machine.Resolve(token)
	case 1:
		r.BoxColor, err = p.vocabulary.Color.Resolve(token)
	case 2:
		r.Location, err = p.vocabulary.Location.Resolve(token)
	case 3:
		r.Event, err = p.vocabulary.Event.Resolve(token)
	case 4:
		r.HadOtherParts, err = vocab.ResolveFlag(token)
	}
	return err
}
