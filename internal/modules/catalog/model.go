// README: Station catalog domain model and query filter.
package catalog

import (
	"strings"

	"evconnect/internal/types"
)

// ChargerType is the normalized charger class of a station.
type ChargerType string

const (
	ChargerACSlow      ChargerType = "AC Slow"
	ChargerACFast      ChargerType = "AC Fast"
	ChargerDCFast      ChargerType = "DC Fast"
	ChargerDCSuperFast ChargerType = "DC Super Fast"
)

// Availability is the derived station state.
type Availability string

const (
	StationAvailable Availability = "available"
	StationBusy      Availability = "busy"
	StationOffline   Availability = "offline"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// Station is one charging location. Stations are immutable once ingested;
// a refresh replaces the whole snapshot, never individual fields.
type Station struct {
	ID             types.ID
	Name           string
	Address        string
	City           string
	State          string
	Pincode        string
	Location       types.Point
	PricePerUnit   types.Money // per kWh
	ChargerType    ChargerType
	Rating         float64
	TotalSlots     int
	AvailableSlots int
	Availability   Availability
	Amenities      []string
	OperatingHours string
	ContactNumber  string
	// DistanceKm is a display attribute carried from the data source. It is
	// not recomputed from a search origin; see maps.DistanceService for the
	// live lookup.
	DistanceKm float64
}

// Filter is a conjunction of station predicates. The zero value matches
// every station.
type Filter struct {
	// MinPricePaise and MaxPricePaise bound PricePerUnit inclusively.
	// MaxPricePaise <= 0 leaves the range unbounded above.
	MinPricePaise int64
	MaxPricePaise int64
	// ChargerType matches as a case-insensitive substring; "" or "all"
	// matches everything.
	ChargerType string
	// Availability matches by equality; "" or "all" matches everything.
	Availability string
	// State and City match as case-insensitive substrings.
	State string
	City  string
}

// Matches reports whether the station satisfies every filter dimension.
func (f Filter) Matches(st Station) bool {
	if st.PricePerUnit.Amount < f.MinPricePaise {
		return false
	}
	if f.MaxPricePaise > 0 && st.PricePerUnit.Amount > f.MaxPricePaise {
		return false
	}
	if !wildcard(f.ChargerType) && !containsFold(string(st.ChargerType), f.ChargerType) {
		return false
	}
	if !wildcard(f.Availability) && string(st.Availability) != strings.ToLower(f.Availability) {
		return false
	}
	if f.State != "" && !containsFold(st.State, f.State) {
		return false
	}
	if f.City != "" && !containsFold(st.City, f.City) {
		return false
	}
	return true
}

func wildcard(v string) bool {
	return v == "" || strings.EqualFold(v, FilterAll)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
