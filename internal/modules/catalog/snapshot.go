// README: Immutable station snapshot, wholesale-replaced on refresh.
package catalog

import (
	"time"

	"evconnect/internal/types"
)

// Snapshot is a read-only view of all known stations at a point in time.
// It is never mutated after construction; concurrent readers need no locking.
type Snapshot struct {
	stations []Station
	byID     map[types.ID]int
	LoadedAt time.Time
	// Seeded marks a snapshot built from the built-in demo data because the
	// feed was unreachable or yielded no usable records.
	Seeded bool
}

func newSnapshot(stations []Station, seeded bool) *Snapshot {
	byID := make(map[types.ID]int, len(stations))
	for i, st := range stations {
		if _, dup := byID[st.ID]; !dup {
			byID[st.ID] = i
		}
	}
	return &Snapshot{
		stations: stations,
		byID:     byID,
		LoadedAt: time.Now(),
		Seeded:   seeded,
	}
}

// Stations returns all stations in insertion order. Callers must not modify
// the returned slice.
func (s *Snapshot) Stations() []Station {
	return s.stations
}

// Get looks up a station by id.
func (s *Snapshot) Get(id types.ID) (Station, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Station{}, false
	}
	return s.stations[i], true
}

// Len returns the number of stations in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.stations)
}
