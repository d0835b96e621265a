// README: Base handler utilities (JSON helpers, station DTO mapping).
package handlers

import (
	"github.com/gin-gonic/gin"

	"evconnect/internal/modules/catalog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// stationDTO mirrors the shape the web client consumes. Prices are rendered
// in rupees.
type stationDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Pincode        string   `json:"pincode,omitempty"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Price          float64  `json:"price"`
	ChargerType    string   `json:"chargerType"`
	Rating         float64  `json:"rating"`
	Availability   string   `json:"availability"`
	TotalSlots     int      `json:"totalSlots"`
	AvailableSlots int      `json:"availableSlots"`
	Amenities      []string `json:"amenities"`
	OperatingHours string   `json:"operatingHours"`
	ContactNumber  string   `json:"contactNumber,omitempty"`
	Distance       float64  `json:"distance"`
}

func toStationDTO(st catalog.Station) stationDTO {
	return stationDTO{
		ID:             string(st.ID),
		Name:           st.Name,
		Address:        st.Address,
		City:           st.City,
		State:          st.State,
		Pincode:        st.Pincode,
		Lat:            st.Location.Lat,
		Lng:            st.Location.Lng,
		Price:          st.PricePerUnit.Rupees(),
		ChargerType:    string(st.ChargerType),
		Rating:         st.Rating,
		Availability:   string(st.Availability),
		TotalSlots:     st.TotalSlots,
		AvailableSlots: st.AvailableSlots,
		Amenities:      st.Amenities,
		OperatingHours: st.OperatingHours,
		ContactNumber:  st.ContactNumber,
		Distance:       st.DistanceKm,
	}
}
