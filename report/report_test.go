package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CatherineTower/air-ride-statistics/parser"
	"github.com/CatherineTower/air-ride-statistics/record"
	"github.com/CatherineTower/air-ride-statistics/vocab"
)

func parseRecords(t *testing.T, lines ...string) []record.Record {
	p := parser.New()
	records := make([]record.Record, 0, len(lines))
	for _, line := range lines {
		r, err := p.Parse(line)
		require.NoError(t, err, line)
		records = append(records, r)
	}
	return records
}

var sampleLines = []string{
	"hydra | red | cityhall | boxes | no",
	"dragoon | none | volcano | none | yes",
	"dragoon | blue | volcano | fog | yes",
	"hydra | green | coral | none | no",
}

func TestCount_ByLocation(t *testing.T) {
	records := parseRecords(t, sampleLines...)

	tally := Count(records, vocab.Default(), DefaultLabels(), ByLocation)
	require.Len(t, tally.Rows, 12)
	assert.Equal(t, 4, tally.Total)
	assert.Equal(t, Row{Member: vocab.Coral, Label: "Coral", Count: 1}, tally.Rows[vocab.Coral])
	assert.Equal(t, Row{Member: vocab.Volcano, Label: "Volcano", Count: 2}, tally.Rows[vocab.Volcano])
	assert.Equal(t, Row{Member: vocab.CityHall, Label: "City Hall", Count: 1}, tally.Rows[vocab.CityHall])
	assert.Equal(t, 0, tally.Rows[vocab.SkyPlatform].Count)
}

func TestCount_ByParts(t *testing.T) {
	records := parseRecords(t, sampleLines...)

	tally := Count(records, vocab.Default(), DefaultLabels(), ByParts)
	require.Len(t, tally.Rows, 2)
	assert.Equal(t, "No other parts", tally.Rows[0].Label)
	assert.Equal(t, 2, tally.Rows[0].Count)
	assert.Equal(t, 2, tally.Rows[1].Count)
}

func TestCount_Empty(t *testing.T) {
	tally := Count(nil, vocab.Default(), DefaultLabels(), ByEvent)
	assert.Len(t, tally.Rows, 15)
	assert.Equal(t, 0, tally.Total)
}

func TestLabels_FallBackToSpelling(t *testing.T) {
	locations := vocab.MustDomain(vocab.LocationDomain, "coral", "underhouses")
	labels := DefaultLabels()

	assert.Equal(t, "Coral", labels.Label(locations, 0))
	assert.Equal(t, "underhouses", labels.Label(locations, 1))

	labels.Set(vocab.LocationDomain, "UnderHouses", "Under the Houses")
	assert.Equal(t, "Under the Houses", labels.Label(locations, 1))
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("Location")
	require.NoError(t, err)
	assert.Equal(t, ByLocation, d)
	assert.Equal(t, "location", d.String())

	_, err = ParseDimension("weather")
	assert.Error(t, err)
}

func TestFilter_SelectsRecords(t *testing.T) {
	records := parseRecords(t, sampleLines...)

	cases := []struct {
		expr string
		want int
	}{
		{`.location == "volcano"`, 2},
		{`select(.parts)`, 2},
		{`.machine == "hydra" and .color != "red"`, 1},
		{`empty`, 0},
		{`true`, 4},
		{`null`, 0},
	}
	for _, c := range cases {
		f, err := NewFilter(c.expr, vocab.Default())
		require.NoError(t, err, c.expr)

		kept, err := f.Apply(records)
		require.NoError(t, err, c.expr)
		assert.Len(t, kept, c.want, c.expr)
	}
}

func TestFilter_Errors(t *testing.T) {
	_, err := NewFilter(".location ==", vocab.Default())
	assert.ErrorContains(t, err, "failed to parse filter")

	_, err = NewFilter("$undefined", vocab.Default())
	assert.ErrorContains(t, err, "failed to compile filter")

	f, err := NewFilter(`error("boom")`, vocab.Default())
	require.NoError(t, err)
	_, err = f.Apply(parseRecords(t, sampleLines[0]))
	assert.ErrorContains(t, err, "boom")
}

func TestWritePlain(t *testing.T) {
	records := parseRecords(t, sampleLines...)
	tally := Count(records, vocab.Default(), DefaultLabels(), ByColor)

	var buf bytes.Buffer
	require.NoError(t, WritePlain(&buf, tally))
	assert.Equal(t, "Red: 1\nGreen: 1\nBlue: 1\nUnknown color: 1\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	records := parseRecords(t, sampleLines...)
	tally := Count(records, vocab.Default(), DefaultLabels(), ByMachine)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tally, 0))
	assert.Equal(t, strings.Join([]string{
		"Machine  Count",
		"--------------",
		"Dragoon      2",
		"Hydra        2",
		"Total        4",
		"",
	}, "\n"), buf.String())
}

func TestWriteTable_WrapsLabels(t *testing.T) {
	records := parseRecords(t, sampleLines...)
	tally := Count(records, vocab.Default(), DefaultLabels(), ByLocation)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tally, 19))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 19, line)
	}
	assert.Equal(t, "Location      Count", lines[0])
	assert.Contains(t, lines, "Dilapidated       0")
	assert.Contains(t, lines, "Houses")
}
