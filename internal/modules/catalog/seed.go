// README: Built-in demonstration stations used when the feed yields nothing.
package catalog

import "evconnect/internal/types"

// seedStations keeps the catalog usable when the external feed is down or
// empty. Falling back here is a degrade-gracefully policy, not an error.
var seedStations = []Station{
	{
		ID:             "1",
		Name:           "Tata Power Charging Station",
		Address:        "Connaught Place, New Delhi, Delhi",
		City:           "New Delhi",
		State:          "Delhi",
		Pincode:        "110001",
		Location:       types.Point{Lat: 28.6315, Lng: 77.2167},
		PricePerUnit:   types.Money{Amount: 1200, Currency: "INR"},
		ChargerType:    ChargerDCFast,
		Rating:         4.5,
		TotalSlots:     8,
		AvailableSlots: 5,
		Availability:   StationAvailable,
		Amenities:      []string{"WiFi", "Cafe", "Restroom", "Parking"},
		OperatingHours: "24/7",
		ContactNumber:  "+91-11-12345678",
		DistanceKm:     2.3,
	},
	{
		ID:             "2",
		Name:           "Ather Grid Station",
		Address:        "Koramangala, Bangalore, Karnataka",
		City:           "Bangalore",
		State:          "Karnataka",
		Pincode:        "560034",
		Location:       types.Point{Lat: 12.9352, Lng: 77.6245},
		PricePerUnit:   types.Money{Amount: 800, Currency: "INR"},
		ChargerType:    ChargerACSlow,
		Rating:         4.2,
		TotalSlots:     4,
		AvailableSlots: 2,
		Availability:   StationAvailable,
		Amenities:      []string{"WiFi", "Parking"},
		OperatingHours: "6:00 AM - 10:00 PM",
		ContactNumber:  "+91-80-87654321",
		DistanceKm:     1.8,
	},
	{
		ID:             "3",
		Name:           "ChargePoint Station",
		Address:        "Bandra West, Mumbai, Maharashtra",
		City:           "Mumbai",
		State:          "Maharashtra",
		Pincode:        "400050",
		Location:       types.Point{Lat: 19.0596, Lng: 72.8295},
		PricePerUnit:   types.Money{Amount: 1500, Currency: "INR"},
		ChargerType:    ChargerDCFast,
		Rating:         4.7,
		TotalSlots:     6,
		AvailableSlots: 0,
		Availability:   StationBusy,
		Amenities:      []string{"WiFi", "Cafe", "Shopping", "Parking"},
		OperatingHours: "24/7",
		ContactNumber:  "+91-22-11223344",
		DistanceKm:     3.1,
	},
	{
		ID:             "4",
		Name:           "Fortum Charge & Drive",
		Address:        "Anna Nagar, Chennai, Tamil Nadu",
		City:           "Chennai",
		State:          "Tamil Nadu",
		Pincode:        "600040",
		Location:       types.Point{Lat: 13.0843, Lng: 80.2705},
		PricePerUnit:   types.Money{Amount: 1000, Currency: "INR"},
		ChargerType:    ChargerACFast,
		Rating:         4.3,
		TotalSlots:     5,
		AvailableSlots: 3,
		Availability:   StationAvailable,
		Amenities:      []string{"Parking", "Restroom"},
		OperatingHours: "5:00 AM - 11:00 PM",
		ContactNumber:  "+91-44-55667788",
		DistanceKm:     4.2,
	},
	{
		ID:             "5",
		Name:           "Tesla Supercharger",
		Address:        "Cyber City, Gurgaon, Haryana",
		City:           "Gurgaon",
		State:          "Haryana",
		Pincode:        "122002",
		Location:       types.Point{Lat: 28.4595, Lng: 77.0266},
		PricePerUnit:   types.Money{Amount: 2000, Currency: "INR"},
		ChargerType:    ChargerDCSuperFast,
		Rating:         4.8,
		TotalSlots:     10,
		AvailableSlots: 6,
		Availability:   StationAvailable,
		Amenities:      []string{"WiFi", "Cafe", "Lounge", "Parking"},
		OperatingHours: "24/7",
		ContactNumber:  "+91-124-99887766",
		DistanceKm:     5.5,
	},
}

// SeedSnapshot builds a snapshot from the built-in stations.
func SeedSnapshot() *Snapshot {
	return newSnapshot(seedStations, true)
}
