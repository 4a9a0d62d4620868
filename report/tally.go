// Package report summarizes parsed records: tallies per field, text tables,
// jq filtering and an interactive terminal view.
package report

import (
	"fmt"
	"strings"

	"github.com/CatherineTower/air-ride-statistics/record"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// Dimension is the record field a tally counts by.
type Dimension int

const (
	ByMachine Dimension = iota
	ByColor
	ByLocation
	ByEvent
	ByParts
)

// Dimensions lists every dimension in display order.
var Dimensions = []Dimension{ByLocation, ByEvent, ByColor, ByMachine, ByParts}

var dimensionNames = map[Dimension]string{
	ByMachine:  "machine",
	ByColor:    "color",
	ByLocation: "location",
	ByEvent:    "event",
	ByParts:    "parts",
}

func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

func ParseDimension(s string) (Dimension, error) {
	for d, name := range dimensionNames {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown tally dimension %q (want machine, color, location, event or parts)", s)
}

func (d Dimension) domain(v *vocab.Vocabulary) *vocab.Domain {
	var name string
	switch d {
	case ByMachine:
		name = vocab.MachineDomain
	case ByColor:
		name = vocab.ColorDomain
	case ByLocation:
		name = vocab.LocationDomain
	case ByEvent:
		name = vocab.EventDomain
	default:
		name = vocab.FlagDomain
	}
	domain, _ := v.Domain(name)
	return domain
}

func (d Dimension) member(r record.Record) vocab.Member {
	switch d {
	case ByMachine:
		return r.Machine
	case ByColor:
		return r.BoxColor
	case ByLocation:
		return r.Location
	case ByEvent:
		return r.Event
	}
	if r.HadOtherParts {
		return 1
	}
	return 0
}

type Row struct {
	Member vocab.Member
	Label  string
	Count  int
}

// Tally is the number of records per member of one domain.
type Tally struct {
	Dimension Dimension
	Rows      []Row
	Total     int
}

// Count tallies records by dim. Every member of the domain gets a row, in
// ordinal order, even when its count is zero.
func Count(records []record.Record, v *vocab.Vocabulary, labels *Labels, dim Dimension) *Tally {
	domain := dim.domain(v)

	t := &Tally{Dimension: dim, Rows: make([]Row, domain.Len())}
	for i := range t.Rows {
		m := vocab.Member(i)
		t.Rows[i] = Row{Member: m, Label: labels.Label(domain, m)}
	}

	for _, r := range records {
		m := dim.member(r)
		if m < 0 || int(m) >= len(t.Rows) {
			continue
		}
		t.Rows[m].Count++
		t.Total++
	}
	return t
}
