// README: Booking handlers for quote calculation and form options.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"evconnect/internal/modules/booking"
	"evconnect/internal/types"
)

type BookingHandler struct {
	quotes *booking.Service
}

func NewBookingHandler(quotesSvc *booking.Service) *BookingHandler {
	return &BookingHandler{quotes: quotesSvc}
}

type quoteReq struct {
	StationID       string `json:"station_id"`
	Date            string `json:"date"` // YYYY-MM-DD
	TimeSlot        string `json:"time_slot"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Quote handles POST /api/quotes. A rejected quote is still a 200: the
// verdict travels in the body, not the status code.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.StationID == "" {
		writeError(c, http.StatusBadRequest, "missing station_id")
		return
	}
	date, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	res := h.quotes.Quote(c.Request.Context(), booking.QuoteRequest{
		StationID:       types.ID(req.StationID),
		Date:            date,
		TimeSlot:        req.TimeSlot,
		DurationMinutes: req.DurationMinutes,
	})

	body := gin.H{"valid": res.Valid}
	if res.Valid {
		body["total_price"] = res.TotalPrice.Rupees()
		body["currency"] = res.TotalPrice.Currency
	} else {
		body["reason"] = res.Reason
	}
	writeJSON(c, http.StatusOK, body)
}

// Options handles GET /api/bookings/options with the slot and duration
// choices the booking form offers.
func (h *BookingHandler) Options(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"time_slots":       booking.TimeSlots,
		"duration_minutes": booking.AllowedDurations,
	})
}
