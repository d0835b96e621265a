// README: Station handlers for listing, lookup, refresh, and distance.
package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"evconnect/internal/maps"
	"evconnect/internal/modules/catalog"
	"evconnect/internal/types"
)

type StationHandler struct {
	catalog  *catalog.Service
	distance *maps.DistanceService
}

func NewStationHandler(catalogSvc *catalog.Service, distanceSvc *maps.DistanceService) *StationHandler {
	return &StationHandler{catalog: catalogSvc, distance: distanceSvc}
}

// List handles GET /api/stations. Filters are conjunctive; omitted params
// leave their dimension unconstrained.
func (h *StationHandler) List(c *gin.Context) {
	f := catalog.Filter{
		ChargerType:  c.Query("charger_type"),
		Availability: c.Query("availability"),
		State:        c.Query("state"),
		City:         c.Query("city"),
	}

	var ok bool
	if f.MinPricePaise, ok = priceParam(c, "price_min"); !ok {
		return
	}
	if f.MaxPricePaise, ok = priceParam(c, "price_max"); !ok {
		return
	}

	stations := h.catalog.Query(f)
	out := make([]stationDTO, 0, len(stations))
	for _, st := range stations {
		out = append(out, toStationDTO(st))
	}

	writeJSON(c, http.StatusOK, gin.H{
		"success":  true,
		"count":    len(out),
		"stations": out,
	})
}

// Get handles GET /api/stations/:id.
func (h *StationHandler) Get(c *gin.Context) {
	st, ok := h.catalog.Get(types.ID(c.Param("id")))
	if !ok {
		writeError(c, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(c, http.StatusOK, toStationDTO(st))
}

// Refresh handles POST /api/stations/refresh; it reloads the snapshot from
// the feed on demand.
func (h *StationHandler) Refresh(c *gin.Context) {
	snap := h.catalog.Load(c.Request.Context())
	writeJSON(c, http.StatusOK, gin.H{
		"count":  snap.Len(),
		"seeded": snap.Seeded,
	})
}

// Distance handles GET /api/stations/:id/distance?lat=&lng=. It computes the
// live road distance from the caller origin; the catalog's static distance
// attribute is untouched.
func (h *StationHandler) Distance(c *gin.Context) {
	if h.distance == nil {
		writeError(c, http.StatusServiceUnavailable, "distance lookup not configured")
		return
	}

	st, ok := h.catalog.Get(types.ID(c.Param("id")))
	if !ok {
		writeError(c, http.StatusNotFound, "station not found")
		return
	}

	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	est, err := h.distance.DrivingEstimate(ctx, types.Point{Lat: lat, Lng: lng}, st.Location)
	if err != nil {
		writeError(c, http.StatusBadGateway, "distance lookup failed")
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"station_id":       st.ID,
		"distance_meters":  est.DistanceMeters,
		"distance_text":    est.DistanceHuman,
		"duration_seconds": int(est.Duration.Seconds()),
	})
}

// priceParam parses a rupee price query param into paise. Returns ok=false
// after writing a 400 when the value is present but malformed.
func priceParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		writeError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}
