package report

import (
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/CatherineTower/air-ride-statistics/record"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// Filter selects records with a jq expression. Each record is presented to
// the expression as an object:
//
//	{"machine": "hydra", "color": "red", "location": "cityhall", "event": "boxes", "parts": false}
//
// A record is kept when the first value the expression yields is neither
// null nor false, so both `.parts` and `select(.location == "volcano")` work.
type Filter struct {
	expr       string
	code       *gojq.Code
	vocabulary *vocab.Vocabulary
}

func NewFilter(expr string, v *vocab.Vocabulary) (*Filter, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse filter %q: %w", expr, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", expr, err)
	}

	return &Filter{expr: expr, code: code, vocabulary: v}, nil
}

// Match reports whether r passes the filter.
func (f *Filter) Match(r record.Record) (bool, error) {
	iter := f.code.Run(f.object(r))

	v, ok := iter.Next()
	if !ok {
		return false, nil
	}
	if err, ok := v.(error); ok {
		if halt, ok := err.(*gojq.HaltError); ok && halt.Value() == nil {
			return false, nil
		}
		return false, fmt.Errorf("filter %q failed: %w", f.expr, err)
	}

	return v != nil && v != false, nil
}

// Apply returns the records that pass the filter, in order.
func (f *Filter) Apply(records []record.Record) ([]record.Record, error) {
	kept := make([]record.Record, 0, len(records))
	for _, r := range records {
		ok, err := f.Match(r)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

func (f *Filter) object(r record.Record) map[string]any {
	return map[string]any{
		"machine":  f.vocabulary.Machine.Spelling(r.Machine),
		"color":    f.vocabulary.Color.Spelling(r.BoxColor),
		"location": f.vocabulary.Location.Spelling(r.Location),
		"event":    f.vocabulary.Event.Spelling(r.Event),
		"parts":    r.HadOtherParts,
	}
}
