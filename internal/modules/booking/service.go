// README: Booking quote calculator; pure validation and pricing.
package booking

import (
	"context"
	"time"

	"evconnect/internal/modules/catalog"
	"evconnect/internal/types"
)

// StationReader is the read-only slice of the catalog the calculator needs.
type StationReader interface {
	Get(id types.ID) (catalog.Station, bool)
}

// Service computes price quotes. It never mutates catalog state; a quote
// does not reserve a slot.
type Service struct {
	stations StationReader
}

func NewService(stations StationReader) *Service {
	return &Service{stations: stations}
}

// Quote validates the request and computes the total price. Checks run in a
// fixed order and the first failure short-circuits with its reason:
// station exists, station available, date today-or-future, duration allowed.
func (s *Service) Quote(_ context.Context, req QuoteRequest) QuoteResult {
	st, ok := s.stations.Get(req.StationID)
	if !ok {
		return QuoteResult{Reason: ReasonUnknownStation}
	}
	if st.Availability != catalog.StationAvailable {
		return QuoteResult{Reason: ReasonStationUnavailable}
	}
	if dateBefore(req.Date, time.Now()) {
		return QuoteResult{Reason: ReasonInvalidDate}
	}
	if !durationAllowed(req.DurationMinutes) {
		return QuoteResult{Reason: ReasonInvalidDuration}
	}

	return QuoteResult{
		Valid: true,
		TotalPrice: types.Money{
			Amount:   totalPaise(st.PricePerUnit.Amount, req.DurationMinutes),
			Currency: st.PricePerUnit.Currency,
		},
	}
}

// totalPaise computes price-per-hour times the booked fraction of an hour in
// exact integer arithmetic, rounding half up to the nearest paisa.
func totalPaise(pricePaise int64, minutes int) int64 {
	return (pricePaise*int64(minutes) + 30) / 60
}

// dateBefore compares calendar dates only; the time of day is ignored.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
