package record

// InitialCapacity is the number of slots a new Store starts with.
const InitialCapacity = 256

// Store is an append-only collection of records backed by an array that
// doubles in size whenever it runs out of room.
//
// Slots below Len hold appended records. Slots from Len up to Cap are zero
// valued.
type Store struct {
	slots []Record
	used  int
}

func NewStore() *Store {
	return NewStoreWithCapacity(InitialCapacity)
}

// NewStoreWithCapacity creates a store starting with the given capacity. It
// panics if capacity is not positive, since doubling zero never makes room.
func NewStoreWithCapacity(capacity int) *Store {
	if capacity <= 0 {
		panic("record: store capacity must be positive")
	}
	return &Store{slots: make([]Record, capacity)}
}

// Append adds r after the last appended record, growing the store first if
// it is full.
func (s *Store) Append(r Record) {
	s.mustBeLive()

	if s.used == len(s.slots) {
		s.grow()
	}
	s.slots[s.used] = r
	s.used++
}

// grow doubles the backing array. The used region is copied over and the new
// upper half is left zero valued by make.
func (s *Store) grow() {
	grown := make([]Record, len(s.slots)*2)
	copy(grown, s.slots[:s.used])
	s.slots = grown
}

// Len returns the number of appended records.
func (s *Store) Len() int { return s.used }

// Cap returns the number of slots currently allocated.
func (s *Store) Cap() int { return len(s.slots) }

// At returns the i-th appended record. It panics if i is out of range.
func (s *Store) At(i int) Record {
	s.mustBeLive()

	if i < 0 || i >= s.used {
		panic("record: index out of range")
	}
	return s.slots[i]
}

// Records returns the appended records. The slice aliases the store and is
// only valid until the next Append or Release.
func (s *Store) Records() []Record {
	s.mustBeLive()
	return s.slots[:s.used:s.used]
}

// Release drops the backing array. The store must not be used afterwards.
func (s *Store) Release() {
	s.slots = nil
	s.used = 0
}

func (s *Store) mustBeLive() {
	if s.slots == nil {
		panic("record: store used after Release")
	}
}
