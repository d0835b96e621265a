// README: Normalization tests: location gating, defaults, invariants.
package catalog

import (
	"testing"

	"evconnect/internal/config"
	"evconnect/internal/feed"
)

func testDefaults() config.FeedConfig {
	return config.FeedConfig{
		DefaultPricePaise: 1200,
		DefaultRating:     4.0,
		DefaultTotalSlots: 4,
		DefaultFreeSlots:  2,
	}
}

func TestNormalizeDropsUnusableLocations(t *testing.T) {
	n := NewNormalizer(testDefaults())

	cases := []struct {
		name string
		rec  feed.Record
	}{
		{"missing lat/lng", feed.Record{Name: "A"}},
		{"zero lat/lng", feed.Record{Name: "A", Latitude: "0", Longitude: "0"}},
		{"unparsable lat", feed.Record{Name: "A", Latitude: "north", Longitude: "77.2"}},
		{"unparsable lng", feed.Record{Name: "A", Latitude: "28.6", Longitude: "east"}},
		{"nan lat", feed.Record{Name: "A", Latitude: "NaN", Longitude: "77.2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := n.Normalize(tc.rec); ok {
				t.Fatalf("expected record to be dropped")
			}
		})
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	n := NewNormalizer(testDefaults())

	st, ok := n.Normalize(feed.Record{
		Latitude:  "28.6315",
		Longitude: "77.2167",
	})
	if !ok {
		t.Fatal("expected record to be kept")
	}

	if st.Name != "EV Charging Station" {
		t.Errorf("name = %q", st.Name)
	}
	if st.PricePerUnit.Amount != 1200 || st.PricePerUnit.Currency != "INR" {
		t.Errorf("price = %+v", st.PricePerUnit)
	}
	if st.Rating != 4.0 {
		t.Errorf("rating = %v", st.Rating)
	}
	if st.TotalSlots != 4 || st.AvailableSlots != 2 {
		t.Errorf("slots = %d/%d", st.AvailableSlots, st.TotalSlots)
	}
	if st.Availability != StationAvailable {
		t.Errorf("availability = %s", st.Availability)
	}
	if st.OperatingHours != "24/7" {
		t.Errorf("operating hours = %q", st.OperatingHours)
	}
}

func TestNormalizeDeterministicID(t *testing.T) {
	n := NewNormalizer(testDefaults())
	rec := feed.Record{
		StationName: "Tata Power Charging Station",
		Address:     "Connaught Place",
		Latitude:    "28.6315",
		Longitude:   "77.2167",
	}

	a, ok := n.Normalize(rec)
	if !ok {
		t.Fatal("record dropped")
	}
	b, _ := n.Normalize(rec)
	if a.ID == "" || a.ID != b.ID {
		t.Errorf("ids not stable: %q vs %q", a.ID, b.ID)
	}

	other := rec
	other.Address = "Koramangala"
	c, _ := n.Normalize(other)
	if c.ID == a.ID {
		t.Errorf("distinct records share id %q", a.ID)
	}
}

func TestNormalizeKeepsExplicitID(t *testing.T) {
	n := NewNormalizer(testDefaults())
	st, ok := n.Normalize(feed.Record{ID: "st-42", Latitude: "1", Longitude: "2"})
	if !ok || st.ID != "st-42" {
		t.Fatalf("id = %q, ok = %v", st.ID, ok)
	}
}

func TestNormalizeSlotInvariant(t *testing.T) {
	n := NewNormalizer(testDefaults())

	cases := []struct {
		name      string
		total     string
		free      string
		wantTotal int
		wantFree  int
	}{
		{"free clamped to total", "3", "7", 3, 3},
		{"negative free", "3", "-1", 3, 0},
		{"negative total", "-2", "1", 0, 0},
		{"unparsable uses defaults", "lots", "some", 4, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := n.Normalize(feed.Record{
				Latitude: "1", Longitude: "2",
				TotalSlots: tc.total, AvailableSlots: tc.free,
			})
			if !ok {
				t.Fatal("record dropped")
			}
			if st.TotalSlots != tc.wantTotal || st.AvailableSlots != tc.wantFree {
				t.Errorf("slots = %d/%d, want %d/%d",
					st.AvailableSlots, st.TotalSlots, tc.wantFree, tc.wantTotal)
			}
			if st.AvailableSlots > st.TotalSlots {
				t.Error("availableSlots > totalSlots")
			}
		})
	}
}

func TestNormalizeAvailability(t *testing.T) {
	n := NewNormalizer(testDefaults())

	cases := []struct {
		name string
		rec  feed.Record
		want Availability
	}{
		{"explicit offline", feed.Record{Latitude: "1", Longitude: "2", Availability: "offline"}, StationOffline},
		{"explicit busy", feed.Record{Latitude: "1", Longitude: "2", Availability: "Busy"}, StationBusy},
		{"derived available", feed.Record{Latitude: "1", Longitude: "2", AvailableSlots: "2", TotalSlots: "4"}, StationAvailable},
		{"available needs free slots", feed.Record{Latitude: "1", Longitude: "2", Availability: "available", AvailableSlots: "0", TotalSlots: "4"}, StationBusy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := n.Normalize(tc.rec)
			if !ok {
				t.Fatal("record dropped")
			}
			if st.Availability != tc.want {
				t.Errorf("availability = %s, want %s", st.Availability, tc.want)
			}
		})
	}
}

func TestNormalizeChargerType(t *testing.T) {
	cases := []struct {
		raw  string
		want ChargerType
	}{
		{"DC Super Fast", ChargerDCSuperFast},
		{"dc fast", ChargerDCFast},
		{"AC/DC", ChargerDCFast},
		{"AC Slow", ChargerACSlow},
		{"AC Fast", ChargerACFast},
		{"", ChargerACFast},
	}
	for _, tc := range cases {
		if got := normalizeChargerType(tc.raw); got != tc.want {
			t.Errorf("normalizeChargerType(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeRatingClamp(t *testing.T) {
	n := NewNormalizer(testDefaults())

	cases := []struct {
		raw  string
		want float64
	}{
		{"4.5", 4.5},
		{"9.9", 5},
		{"-1", 0},
	}
	for _, tc := range cases {
		st, ok := n.Normalize(feed.Record{Latitude: "1", Longitude: "2", Rating: tc.raw})
		if !ok {
			t.Fatal("record dropped")
		}
		if st.Rating != tc.want {
			t.Errorf("rating(%q) = %v, want %v", tc.raw, st.Rating, tc.want)
		}
	}
}
