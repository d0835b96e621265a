// README: Defensive normalization of raw feed records into Stations.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"evconnect/internal/config"
	"evconnect/internal/feed"
	"evconnect/internal/types"
)

const fallbackStationName = "EV Charging Station"

// stationNamespace scopes deterministic ids for records the feed ships
// without an id. The same record yields the same id on every refresh.
var stationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("evconnect/station"))

// Normalizer turns untrusted feed records into valid Stations, applying the
// configured defaults for absent optional fields.
type Normalizer struct {
	defaults config.FeedConfig
}

func NewNormalizer(defaults config.FeedConfig) Normalizer {
	return Normalizer{defaults: defaults}
}

// Normalize converts one raw record. ok is false when the record has no
// usable location and must be dropped.
func (n Normalizer) Normalize(rec feed.Record) (Station, bool) {
	loc := types.Point{
		Lat: parseFloatOrZero(rec.Latitude),
		Lng: parseFloatOrZero(rec.Longitude),
	}
	if loc.IsZero() || !isFinite(loc.Lat) || !isFinite(loc.Lng) {
		return Station{}, false
	}

	name := firstNonEmpty(rec.StationName, rec.Name, fallbackStationName)

	total := parseIntOr(rec.TotalSlots, n.defaults.DefaultTotalSlots)
	free := parseIntOr(rec.AvailableSlots, n.defaults.DefaultFreeSlots)
	if total < 0 {
		total = 0
	}
	if free < 0 {
		free = 0
	}
	if free > total {
		free = total
	}

	st := Station{
		ID:             stationID(rec, name, loc),
		Name:           name,
		Address:        joinAddress(rec.Address, rec.City, rec.State),
		City:           rec.City,
		State:          rec.State,
		Pincode:        rec.Pincode,
		Location:       loc,
		PricePerUnit:   types.Money{Amount: pricePaise(rec.Price, n.defaults.DefaultPricePaise), Currency: "INR"},
		ChargerType:    normalizeChargerType(rec.ChargerType),
		Rating:         clampRating(parseFloatOr(rec.Rating, n.defaults.DefaultRating)),
		TotalSlots:     total,
		AvailableSlots: free,
		Availability:   deriveAvailability(rec.Availability, free),
		Amenities:      defaultAmenities,
		OperatingHours: firstNonEmpty(rec.OperatingHours, "24/7"),
		ContactNumber:  rec.ContactNumber,
		DistanceKm:     parseFloatOrZero(rec.DistanceKm),
	}
	return st, true
}

// defaultAmenities is the policy default when the feed carries none.
var defaultAmenities = []string{"Parking"}

func stationID(rec feed.Record, name string, loc types.Point) types.ID {
	if id := strings.TrimSpace(rec.ID); id != "" {
		return types.ID(id)
	}
	key := strings.Join([]string{
		name,
		rec.Address,
		strconv.FormatFloat(loc.Lat, 'f', -1, 64),
		strconv.FormatFloat(loc.Lng, 'f', -1, 64),
	}, "|")
	return types.ID(uuid.NewSHA1(stationNamespace, []byte(key)).String())
}

func normalizeChargerType(raw string) ChargerType {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "super"):
		return ChargerDCSuperFast
	case strings.Contains(s, "dc"):
		return ChargerDCFast
	case strings.Contains(s, "slow"):
		return ChargerACSlow
	default:
		return ChargerACFast
	}
}

// deriveAvailability honors an explicit busy/offline flag from the feed and
// otherwise derives the state from the free-slot count. A station can never
// be available with zero free slots.
func deriveAvailability(raw string, freeSlots int) Availability {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(StationBusy):
		return StationBusy
	case string(StationOffline):
		return StationOffline
	}
	if freeSlots > 0 {
		return StationAvailable
	}
	return StationBusy
}

// pricePaise parses a price in rupees and converts to paise; an absent or
// unparsable field takes the configured default rather than a fabricated
// value.
func pricePaise(raw string, def int64) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return int64(math.Round(v * 100))
}

func clampRating(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

func joinAddress(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseFloatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatOr(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return v
}

func parseIntOr(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}
