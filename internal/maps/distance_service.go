// README: Google Maps driving-distance lookup for a station from a caller origin.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"evconnect/internal/types"
)

// DistanceService handles interactions with the Google Maps Directions API.
// The catalog's DistanceKm field stays a static display attribute; this
// service is the opt-in live computation.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Estimate is a driving route summary.
type Estimate struct {
	DistanceMeters int
	Duration       time.Duration
	DistanceHuman  string
}

// DrivingEstimate returns the road distance and duration from origin to
// destination. It assumes driving mode.
func (s *DistanceService) DrivingEstimate(ctx context.Context, origin, destination types.Point) (Estimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		Destination: fmt.Sprintf("%f,%f", destination.Lat, destination.Lng),
		Mode:        maps.TravelModeDriving,
		Region:      "IN",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Estimate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return Estimate{
		DistanceMeters: leg.Distance.Meters,
		Duration:       leg.Duration,
		DistanceHuman:  leg.Distance.HumanReadable,
	}, nil
}
