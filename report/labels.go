package report

import (
	"strings"

	"github.com/CatherineTower/air-ride-statistics/vocab"
)

// Labels maps vocabulary spellings to the names shown in reports. Spellings
// without a label are shown as they are.
type Labels struct {
	byDomain map[string]map[string]string
}

func NewLabels() *Labels {
	return &Labels{byDomain: make(map[string]map[string]string)}
}

// DefaultLabels returns the display names for the default vocabulary.
func DefaultLabels() *Labels {
	l := NewLabels()
	l.setAll(vocab.MachineDomain, map[string]string{
		"dragoon": "Dragoon",
		"hydra":   "Hydra",
	})
	l.setAll(vocab.ColorDomain, map[string]string{
		"red":   "Red",
		"green": "Green",
		"blue":  "Blue",
		"none":  "Unknown color",
	})
	l.setAll(vocab.LocationDomain, map[string]string{
		"coral":        "Coral",
		"houses":       "Dilapidated Houses",
		"downtown":     "Downtown",
		"levels":       "Parking Garage",
		"volcano":      "Volcano",
		"forest":       "Forest",
		"golf":         "Golf Course",
		"cityhall":     "City Hall",
		"undervolcano": "Under the Volcano",
		"undercity":    "Under the City",
		"underforest":  "Under the Forest",
		"skyplatform":  "Sky Platform",
	})
	l.setAll(vocab.EventDomain, map[string]string{
		"none":            "No event",
		"boxes":           "All items are the same",
		"dynablade":       "Dyna Blade is attacking",
		"fog":             "A dense fog covers the city",
		"pillar":          "A huge pillar has appeared",
		"lighthouse":      "The lighthouse has turned on",
		"fakeitems":       "Some items are fakes",
		"burning":         "The rail stations are burning",
		"meteors":         "Meteors are falling on the city",
		"bouncy":          "Items are bouncy",
		"tac":             "Tac stole items and is hiding",
		"ufo":             "A UFO has appeared",
		"zooming":         "Star fuel tanks are out of control",
		"cityhallchamber": "City Hall's secret chamber has opened",
		"restorationspot": "Restoration spots have appeared",
	})
	l.setAll(vocab.FlagDomain, map[string]string{
		"no":  "No other parts",
		"yes": "Other parts found",
	})
	return l
}

func (l *Labels) setAll(domain string, labels map[string]string) {
	for spelling, label := range labels {
		l.Set(domain, spelling, label)
	}
}

// Set assigns a label to a spelling. Spellings are matched ignoring case.
func (l *Labels) Set(domain, spelling, label string) {
	m, ok := l.byDomain[domain]
	if !ok {
		m = make(map[string]string)
		l.byDomain[domain] = m
	}
	m[strings.ToLower(spelling)] = label
}

// Label returns the display name of member m of d.
func (l *Labels) Label(d *vocab.Domain, m vocab.Member) string {
	spelling := d.Spelling(m)
	if label, ok := l.byDomain[d.Name()][strings.ToLower(spelling)]; ok {
		return label
	}
	return spelling
}
