// README: Station catalog service; snapshot lifecycle and filtered queries.
package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"evconnect/internal/feed"
	"evconnect/internal/types"
)

// Service owns the current station snapshot. Refreshes swap the snapshot
// atomically so an in-flight query never observes a mix of old and new
// records.
type Service struct {
	source feed.Source
	norm   Normalizer
	log    *zap.Logger

	snap atomic.Pointer[Snapshot]
}

func NewService(source feed.Source, norm Normalizer, log *zap.Logger) *Service {
	s := &Service{source: source, norm: norm, log: log}
	s.snap.Store(SeedSnapshot())
	return s
}

// Load fetches the feed, normalizes it, and installs a new snapshot. When
// the feed is unreachable or yields zero usable records the built-in seed
// snapshot is installed instead; Load never leaves the catalog empty and
// never returns a fatal error for feed trouble.
func (s *Service) Load(ctx context.Context) *Snapshot {
	records, err := s.source.Fetch(ctx)
	if err != nil {
		s.log.Warn("feed fetch failed, falling back to seed data", zap.Error(err))
		snap := SeedSnapshot()
		s.snap.Store(snap)
		return snap
	}

	stations := make([]Station, 0, len(records))
	dropped := 0
	for _, rec := range records {
		st, ok := s.norm.Normalize(rec)
		if !ok {
			dropped++
			continue
		}
		stations = append(stations, st)
	}

	var snap *Snapshot
	if len(stations) == 0 {
		s.log.Warn("feed returned no usable records, falling back to seed data",
			zap.Int("raw_records", len(records)))
		snap = SeedSnapshot()
	} else {
		snap = newSnapshot(stations, false)
	}

	s.snap.Store(snap)
	s.log.Info("station snapshot loaded",
		zap.Int("stations", snap.Len()),
		zap.Int("dropped", dropped),
		zap.Bool("seeded", snap.Seeded))
	return snap
}

// Snapshot returns the current consistent snapshot.
func (s *Service) Snapshot() *Snapshot {
	return s.snap.Load()
}

// Query returns stations matching every filter dimension, in snapshot
// insertion order. Re-filtering never reorders.
func (s *Service) Query(f Filter) []Station {
	snap := s.snap.Load()
	var out []Station
	for _, st := range snap.Stations() {
		if f.Matches(st) {
			out = append(out, st)
		}
	}
	return out
}

// Get looks up one station in the current snapshot.
func (s *Service) Get(id types.ID) (Station, bool) {
	return s.snap.Load().Get(id)
}

// RunRefresher reloads the snapshot on the given interval until ctx is done.
func (s *Service) RunRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Load(ctx)
		}
	}
}
