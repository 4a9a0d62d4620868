package record

import "github.com/CatherineTower/air-ride-statistics/vocab"

// Record is one fully resolved line of a data file. Each field other than
// HadOtherParts is a member of the matching vocabulary domain.
type Record struct {
	Machine  vocab.Member
	BoxColor vocab.Member
	Location vocab.Member
	Event    vocab.Member

	// Whether other parts were found alongside the box.
	HadOtherParts bool
}
