package vocab

import "fmt"

// Domain names, as used in vocabulary files and error messages.
const (
	MachineDomain  = "machine"
	ColorDomain    = "color"
	LocationDomain = "location"
	EventDomain    = "event"
	FlagDomain     = "flag"
)

// flag is fixed: the yes/no field is not configurable.
var flag = MustDomain(FlagDomain, "no", "yes")

// Vocabulary holds one domain for each configurable record field.
type Vocabulary struct {
	Machine  *Domain
	Color    *Domain
	Location *Domain
	Event    *Domain
}

// Domain returns the domain with the given name.
func (v *Vocabulary) Domain(name string) (*Domain, error) {
	switch name {
	case MachineDomain:
		return v.Machine, nil
	case ColorDomain:
		return v.Color, nil
	case LocationDomain:
		return v.Location, nil
	case EventDomain:
		return v.Event, nil
	case FlagDomain:
		return flag, nil
	}
	return nil, fmt.Errorf("unknown vocabulary domain %q", name)
}

// With returns a copy of v where the domain named d.Name() is replaced by d.
func (v *Vocabulary) With(d *Domain) (*Vocabulary, error) {
	cp := *v
	switch d.Name() {
	case MachineDomain:
		cp.Machine = d
	case ColorDomain:
		cp.Color = d
	case LocationDomain:
		cp.Location = d
	case EventDomain:
		cp.Event = d
	default:
		return nil, fmt.Errorf("domain %q cannot be replaced", d.Name())
	}
	return &cp, nil
}

// ResolveFlag resolves a yes/no token.
func ResolveFlag(token string) (bool, error) {
	m, err := flag.Resolve(token)
	if err != nil {
		return false, err
	}
	return m == 1, nil
}
