package vocab

// Members of the default vocabulary.
const (
	Dragoon Member = iota
	Hydra
)

const (
	Red Member = iota
	Green
	Blue
	UnknownColor
)

const (
	Coral Member = iota
	Houses
	Downtown
	Levels
	Volcano
	Forest
	Golf
	CityHall
	UnderVolcano
	UnderCity
	UnderForest
	SkyPlatform
)

const (
	NoEvent Member = iota
	Boxes
	DynaBlade
	Fog
	Pillar
	Lighthouse
	FakeItems
	Burning
	Meteors
	Bouncy
	Tac
	UFO
	Zooming
	CityHallChamber
	RestorationSpot
)

// Default returns the built-in vocabulary. Files that use a different set of
// locations or events should load a vocabulary file instead.
func Default() *Vocabulary {
	return &Vocabulary{
		Machine: MustDomain(MachineDomain, "dragoon", "hydra"),
		Color:   MustDomain(ColorDomain, "red", "green", "blue", "none"),
		Location: MustDomain(LocationDomain,
			"coral", "houses", "downtown", "levels", "volcano", "forest",
			"golf", "cityhall", "undervolcano", "undercity", "underforest",
			"skyplatform",
		),
		Event: MustDomain(EventDomain,
			"none", "boxes", "dynablade", "fog", "pillar", "lighthouse",
			"fakeitems", "burning", "meteors", "bouncy", "tac", "ufo",
			"zooming", "cityhallchamber", "restorationspot",
		),
	}
}
